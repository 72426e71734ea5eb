// SPDX-License-Identifier: MIT

package schedule

import "errors"

// ErrInvalidDescription wraps every decode, structural and numeric failure
// reported by this package. Numeric failures also match the flatten
// sentinels through errors.Is.
var ErrInvalidDescription = errors.New("schedule: invalid description")

// Description is the root of a schedule document.
type Description struct {
	// Composition is "nested" (default) or "additive".
	Composition string `yaml:"composition,omitempty"`

	// TrailingDwell selects flatten.WithTrailingDwell for nested entries.
	TrailingDwell bool `yaml:"trailing_dwell,omitempty"`

	// Entries is the ordered schedule for nested composition.
	Entries []Entry `yaml:"entries,omitempty"`

	// Blocks is the ordered block list for additive composition.
	Blocks []Block `yaml:"blocks,omitempty"`
}

// Entry is one schedule entry: a nested pulse history plus the dwell that
// follows it.
type Entry struct {
	Name        string  `yaml:"name,omitempty"`
	PulseLength float64 `yaml:"pulse_length"`
	Levels      []Level `yaml:"levels"`
	DwellAfter  float64 `yaml:"dwell_after,omitempty"`
}

// Level is one nesting level of an entry's pulse history.
type Level struct {
	NumPulses int     `yaml:"num_pulses"`
	DwellTime float64 `yaml:"dwell_time,omitempty"`
}

// Block is one independent block of an additive description.
type Block struct {
	PulseLength float64 `yaml:"pulse_length"`
	NumPulses   int     `yaml:"num_pulses"`
	DwellTime   float64 `yaml:"dwell_time,omitempty"`
}
