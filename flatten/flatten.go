// SPDX-License-Identifier: MIT

package flatten

// FlattenPulseHistory — single-level flux flattening.
//
// Description:
//
//	numPulses pulses of length pulseLength, separated by dwellTime of zero
//	flux, are replaced by one constant-flux interval of length t_irr at
//	flux_factor times the peak flux.
//
// Rule:
//
//	last level (default):       t_irr = (n-1)·(p+d) + p
//	WithTrailingDwell():        t_irr = n·(p+d)
//	flux_factor                 = n·p / t_irr
//
// Edge cases (exact, no rounding drift):
//   - d == 0                    ⇒ t_irr = n·p, flux_factor = 1.
//   - n == 1 without trailing   ⇒ t_irr = p,   flux_factor = 1.
//
// Errors:
//   - ErrInvalidInput     — p ≤ 0, n < 1, d < 0, or a NaN/±Inf input.
//   - ErrDegenerateResult — t_irr overflowed.
//
// Complexity: O(1).
func FlattenPulseHistory(pulseLength float64, numPulses int, dwellTime float64, opts ...Option) (EffectiveSchedule, error) {
	o := gatherOptions(opts)

	return flattenLevel(pulseLength, numPulses, dwellTime, o.TrailingDwell)
}

// FlattenExactFinalPulses flattens only the leading
// numInitPulses - finalPulses pulses; the trailing finalPulses are left for
// the caller to model literally and append:
//
//	k     = numInitPulses - finalPulses
//	t_irr = k·p + (k-1)·d
//	ff    = k·p / t_irr
//
// finalPulses must lie in [0, numInitPulses); anything else is
// ErrInvalidInput.
func FlattenExactFinalPulses(pulseLength float64, numInitPulses int, dwellTime float64, finalPulses int) (EffectiveSchedule, error) {
	if err := validateLevel(pulseLength, numInitPulses, dwellTime); err != nil {
		return EffectiveSchedule{}, err
	}
	if finalPulses < 0 || finalPulses >= numInitPulses {
		return EffectiveSchedule{}, invalid(FieldFinalPulses, float64(finalPulses))
	}

	return flattenLevel(pulseLength, numInitPulses-finalPulses, dwellTime, false)
}

// flattenLevel validates and flattens one level.
func flattenLevel(p float64, n int, d float64, trailing bool) (EffectiveSchedule, error) {
	if err := validateLevel(p, n, d); err != nil {
		return EffectiveSchedule{}, err
	}

	t := elapsed(p, n, d, trailing)
	if err := validateTIrr(t); err != nil {
		return EffectiveSchedule{}, err
	}
	active := float64(n) * p

	return EffectiveSchedule{TIrr: t, FluxFactor: active / t, ActiveBurnTime: active}, nil
}

// elapsed is the wall time of n pulses of length p separated by d.
// Compression and every composer go through here so that the dwell-free
// case stays bit-identical across all of them.
func elapsed(p float64, n int, d float64, trailing bool) float64 {
	switch {
	case d == 0:
		return float64(n) * p
	case trailing:
		return float64(n) * (p + d)
	case n == 1:
		return p
	default:
		return float64(n-1)*(p+d) + p
	}
}
