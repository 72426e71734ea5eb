// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fluxflat/flatten"
)

// Load reads and decodes the description at path, then validates its
// structure.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a description from r with strict field checking and
// validates its structure.
func Decode(r io.Reader) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDescription)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate checks the structure of d: a known composition, entries for
// nested mode or blocks for additive mode (never both), and at least one
// level per entry. Numeric ranges are left to package flatten.
func (d *Description) Validate() error {
	mode, err := d.Mode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}

	switch mode {
	case flatten.Nested:
		if len(d.Blocks) > 0 {
			return fmt.Errorf("%w: blocks are only allowed with composition %q", ErrInvalidDescription, flatten.Additive)
		}
		if len(d.Entries) == 0 {
			return fmt.Errorf("%w: entries list is required and must be non-empty", ErrInvalidDescription)
		}
		for i, e := range d.Entries {
			if len(e.Levels) == 0 {
				return fmt.Errorf("%w: entries[%d]: levels list is required and must be non-empty", ErrInvalidDescription, i)
			}
		}
	case flatten.Additive:
		if len(d.Entries) > 0 {
			return fmt.Errorf("%w: entries are only allowed with composition %q", ErrInvalidDescription, flatten.Nested)
		}
		if len(d.Blocks) == 0 {
			return fmt.Errorf("%w: blocks list is required and must be non-empty", ErrInvalidDescription)
		}
		if d.TrailingDwell {
			return fmt.Errorf("%w: trailing_dwell has no effect with composition %q", ErrInvalidDescription, flatten.Additive)
		}
	}

	return nil
}

// Mode returns the parsed composition.
func (d *Description) Mode() (flatten.Composition, error) {
	return flatten.ParseComposition(d.Composition)
}

// ScheduleEntries converts the nested entries to flatten values.
func (d *Description) ScheduleEntries() []flatten.ScheduleEntry {
	out := make([]flatten.ScheduleEntry, len(d.Entries))
	for i, e := range d.Entries {
		levels := make([]flatten.PulseLevel, len(e.Levels))
		for j, l := range e.Levels {
			levels[j] = flatten.PulseLevel{NumPulses: l.NumPulses, DwellTime: l.DwellTime}
		}
		out[i] = flatten.ScheduleEntry{
			History:       flatten.PulseHistory{PulseLength: e.PulseLength, Levels: levels},
			TrailingDwell: e.DwellAfter,
		}
	}

	return out
}

// PulseBlocks converts the additive blocks to flatten values.
func (d *Description) PulseBlocks() []flatten.PulseBlock {
	out := make([]flatten.PulseBlock, len(d.Blocks))
	for i, b := range d.Blocks {
		out[i] = flatten.PulseBlock{PulseLength: b.PulseLength, NumPulses: b.NumPulses, DwellTime: b.DwellTime}
	}

	return out
}

// Options returns the flatten options the description selects.
func (d *Description) Options() []flatten.Option {
	if d.TrailingDwell {
		return []flatten.Option{flatten.WithTrailingDwell()}
	}

	return nil
}

// Flatten dispatches on the composition and returns the effective schedule
// of the whole description.
func (d *Description) Flatten() (flatten.EffectiveSchedule, error) {
	if err := d.Validate(); err != nil {
		return flatten.EffectiveSchedule{}, err
	}

	mode, _ := d.Mode()
	var (
		res flatten.EffectiveSchedule
		err error
	)
	if mode == flatten.Additive {
		res, err = flatten.FlattenAdditive(d.PulseBlocks())
	} else {
		res, err = flatten.FlattenSchedule(d.ScheduleEntries(), d.Options()...)
	}
	if err != nil {
		return flatten.EffectiveSchedule{}, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}

	return res, nil
}
