// SPDX-License-Identifier: MIT

package flatten

import (
	"fmt"
	"strings"
)

// PulseLevel is one level of a nested, uniform pulse train.
// The pulse length of a level is the elapsed time of the level below it
// (or PulseHistory.PulseLength for the innermost level).
type PulseLevel struct {
	// NumPulses is the number of repetitions at this level (≥ 1).
	NumPulses int

	// DwellTime is the zero-flux gap between consecutive pulses (≥ 0).
	DwellTime float64
}

// PulseHistory is a nested pulse train, innermost level first.
type PulseHistory struct {
	// PulseLength is the duration of a single innermost pulse (> 0).
	PulseLength float64

	// Levels lists the repetition structure from innermost to outermost.
	Levels []PulseLevel
}

// PulseBlock is one independent flat block for additive composition.
// Unlike PulseLevel, every block carries its own pulse length.
type PulseBlock struct {
	PulseLength float64
	NumPulses   int
	DwellTime   float64
}

// ScheduleEntry is one top-level schedule segment: a full pulse history
// followed by TrailingDwell before the next entry. The trailing dwell of
// the last entry in a schedule is always treated as 0.
type ScheduleEntry struct {
	History       PulseHistory
	TrailingDwell float64
}

// EffectiveSchedule is the flattened, steady-state equivalent of a
// pulsed history.
//
// Invariant (within floating-point tolerance):
//
//	FluxFactor * TIrr == ActiveBurnTime
//
// ActiveBurnTime is the fluence-preserving reference for the scope: the
// innermost pulse length times the product of NumPulses for a history, or
// the sum of entry active times for a schedule.
type EffectiveSchedule struct {
	TIrr           float64
	FluxFactor     float64
	ActiveBurnTime float64
}

// EntryResult is the contribution of one schedule entry.
type EntryResult struct {
	// TIrr is the flattened history time plus the entry's trailing dwell.
	TIrr float64

	// ActiveBurnTime is the fluence-equivalent active duration of the
	// entry's pulse history. The trailing dwell is excluded.
	ActiveBurnTime float64
}

// Composition selects how the levels of one schedule block combine.
//
//   - Nested   — each outer pulse repeats the inner train; flux factors
//     multiply and t_irr feeds the next level as its pulse length.
//   - Additive — levels are independent flat blocks run back to back;
//     t_irr and flux factors are summed.
//
// The two are not interchangeable and give different numbers for the same
// inputs.
type Composition int

const (
	// Nested is the multiplicative, repeated-structure composition.
	Nested Composition = iota

	// Additive is the summed, independent-block composition.
	Additive
)

var compositionNames = [...]string{
	Nested:   "nested",
	Additive: "additive",
}

// String implements fmt.Stringer.
func (c Composition) String() string {
	if c < 0 || int(c) >= len(compositionNames) {
		return fmt.Sprintf("Composition(%d)", int(c))
	}

	return compositionNames[c]
}

// ParseComposition maps "nested" or "additive" (case-insensitive) to a
// Composition. The empty string selects Nested.
func ParseComposition(s string) (Composition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nested":
		return Nested, nil
	case "additive":
		return Additive, nil
	default:
		return 0, fmt.Errorf("flatten: unknown composition %q: %w", s, ErrInvalidInput)
	}
}
