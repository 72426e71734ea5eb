// SPDX-License-Identifier: MIT
// Package: flatten
//
// Purpose:
//   - One place for the boundary checks every primitive runs before doing
//     arithmetic, so composers inherit identical rules.
//   - Return *FieldError wrapping ErrInvalidInput / ErrDegenerateResult.
//
// All checks are pure and allocate only on failure.

package flatten

import (
	"fmt"
	"math"
)

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validatePulseLength requires a finite p > 0.
func validatePulseLength(p float64) error {
	if !finite(p) || p <= 0 {
		return invalid(FieldPulseLength, p)
	}

	return nil
}

// validateNumPulses requires n ≥ 1.
func validateNumPulses(n int) error {
	if n < 1 {
		return invalid(FieldNumPulses, float64(n))
	}

	return nil
}

// validateDwell requires a finite d ≥ 0. field selects the reported name.
func validateDwell(field string, d float64) error {
	if !finite(d) || d < 0 {
		return invalid(field, d)
	}

	return nil
}

// validateLevel runs the per-level checks in a fixed order:
// pulse length → num_pulses → dwell.
func validateLevel(p float64, n int, d float64) error {
	if err := validatePulseLength(p); err != nil {
		return err
	}
	if err := validateNumPulses(n); err != nil {
		return err
	}

	return validateDwell(FieldDwellTime, d)
}

// validateTIrr rejects a computed elapsed time that cannot be divided by.
func validateTIrr(t float64) error {
	if !finite(t) || t <= 0 {
		return &FieldError{Field: FieldTIrr, Value: t, Err: ErrDegenerateResult}
	}

	return nil
}

// validateSameLen reports mismatched parallel slices.
func validateSameLen(nameA string, a int, nameB string, b int) error {
	if a != b {
		return fmt.Errorf("flatten: %d %s vs %d %s: %w", a, nameA, b, nameB, ErrInvalidInput)
	}

	return nil
}
