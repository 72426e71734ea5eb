// SPDX-License-Identifier: MIT
// Package flatten: sentinel errors and the annotation types composers use
// to localize a failing level or entry.

package flatten

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "flatten: ". Match with errors.Is; the
// annotation types below unwrap to the sentinel.
var (
	// ErrInvalidInput is returned for a non-positive pulse length,
	// num_pulses < 1, a negative dwell time, final_pulses outside
	// [0, num_init_pulses), mismatched slice lengths, empty histories or
	// schedules, and NaN/±Inf inputs.
	ErrInvalidInput = errors.New("flatten: invalid input")

	// ErrDegenerateResult is returned when a computed t_irr is not a finite
	// positive number. Validated inputs only reach it through overflow.
	ErrDegenerateResult = errors.New("flatten: degenerate result")
)

// Field names reported in FieldError.
const (
	FieldPulseLength    = "pulse_length"
	FieldNumPulses      = "num_pulses"
	FieldDwellTime      = "dwell_time"
	FieldFinalPulses    = "final_pulses"
	FieldSchedDwellTime = "sched_dwell_time"
	FieldLevels         = "levels"
	FieldEntries        = "entries"
	FieldTIrr           = "t_irr"
)

// FieldError reports the field and value that failed validation.
type FieldError struct {
	Field string
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// LevelError wraps a failure at index Level of a multi-level history or
// additive block list.
type LevelError struct {
	Level int
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("level %d: %v", e.Level, e.Err)
}

func (e *LevelError) Unwrap() error { return e.Err }

// EntryError wraps a failure at index Entry of a schedule.
type EntryError struct {
	Entry int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// invalid builds the FieldError for an ErrInvalidInput violation.
func invalid(field string, v float64) error {
	return &FieldError{Field: field, Value: v, Err: ErrInvalidInput}
}
