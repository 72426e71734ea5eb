// SPDX-License-Identifier: MIT

package flatten

// FlattenLevels — nested multi-level composition.
//
// Algorithm:
//  1. pulse := h.PulseLength, ff := 1.
//  2. For each level k (innermost first):
//     s     = FlattenPulseHistory(pulse, n_k, d_k)
//     pulse = s.TIrr
//     ff   *= s.FluxFactor
//  3. Return (pulse, ff).
//
// Inner dead time lowers the duty fraction seen by outer levels, hence the
// product. The product telescopes, so
//
//	ff · t_irr == h.PulseLength · Π n_k
//
// By default no level charges a dwell after its final pulse: the gap
// between two repetitions of an inner train is the outer level's dwell.
// WithTrailingDwell() charges it on every level except the outermost.
//
// Errors: any primitive failure, wrapped in *LevelError; an empty Levels
// slice is ErrInvalidInput.
//
// Complexity: O(len(h.Levels)).
func FlattenLevels(h PulseHistory, opts ...Option) (EffectiveSchedule, error) {
	return flattenHistory(h, gatherOptions(opts))
}

// flattenHistory is FlattenLevels with resolved options.
func flattenHistory(h PulseHistory, o Options) (EffectiveSchedule, error) {
	if err := validatePulseLength(h.PulseLength); err != nil {
		return EffectiveSchedule{}, err
	}
	if len(h.Levels) == 0 {
		return EffectiveSchedule{}, invalid(FieldLevels, 0)
	}

	var (
		pulse  = h.PulseLength
		active = h.PulseLength
		ff     = 1.0
		last   = len(h.Levels) - 1
	)
	for i, lvl := range h.Levels {
		s, err := flattenLevel(pulse, lvl.NumPulses, lvl.DwellTime, o.TrailingDwell && i != last)
		if err != nil {
			return EffectiveSchedule{}, &LevelError{Level: i, Err: err}
		}
		pulse = s.TIrr
		ff *= s.FluxFactor
		active *= float64(lvl.NumPulses)
	}

	return EffectiveSchedule{TIrr: pulse, FluxFactor: ff, ActiveBurnTime: active}, nil
}

// FlattenAllLevels is FlattenLevels over parallel slices, matching the shape
// schedule readers hand over: numsPulses[k] and dwellTimes[k] describe level
// k, innermost first.
func FlattenAllLevels(pulseLength float64, numsPulses []int, dwellTimes []float64, opts ...Option) (EffectiveSchedule, error) {
	levels, err := levelsOf(numsPulses, dwellTimes)
	if err != nil {
		return EffectiveSchedule{}, err
	}

	return FlattenLevels(PulseHistory{PulseLength: pulseLength, Levels: levels}, opts...)
}

// FlattenAdditive — additive composition of independent flat blocks.
//
// Each block is flattened on its own. Every block except the last charges a
// dwell after its final pulse (the next block follows it); t_irr and
// flux_factor are then summed across blocks.
//
// The summed flux factor is a sum of per-block duty fractions, not a duty
// fraction of the whole, and may exceed 1. ActiveBurnTime is Σ n·p.
//
// Errors: any primitive failure, wrapped in *LevelError; an empty block list
// is ErrInvalidInput.
func FlattenAdditive(blocks []PulseBlock) (EffectiveSchedule, error) {
	if len(blocks) == 0 {
		return EffectiveSchedule{}, invalid(FieldLevels, 0)
	}

	var total EffectiveSchedule
	last := len(blocks) - 1
	for i, b := range blocks {
		s, err := flattenLevel(b.PulseLength, b.NumPulses, b.DwellTime, i != last)
		if err != nil {
			return EffectiveSchedule{}, &LevelError{Level: i, Err: err}
		}
		total.TIrr += s.TIrr
		total.FluxFactor += s.FluxFactor
		total.ActiveBurnTime += s.ActiveBurnTime
	}

	return total, nil
}

// FlattenAllBlocks is FlattenAdditive over parallel slices.
func FlattenAllBlocks(pulseLengths []float64, numsPulses []int, dwellTimes []float64) (EffectiveSchedule, error) {
	if err := validateSameLen("pulse_lengths", len(pulseLengths), "nums_pulses", len(numsPulses)); err != nil {
		return EffectiveSchedule{}, err
	}
	if err := validateSameLen("nums_pulses", len(numsPulses), "dwell_times", len(dwellTimes)); err != nil {
		return EffectiveSchedule{}, err
	}

	blocks := make([]PulseBlock, len(pulseLengths))
	for i := range blocks {
		blocks[i] = PulseBlock{PulseLength: pulseLengths[i], NumPulses: numsPulses[i], DwellTime: dwellTimes[i]}
	}

	return FlattenAdditive(blocks)
}

// levelsOf zips parallel level slices.
func levelsOf(numsPulses []int, dwellTimes []float64) ([]PulseLevel, error) {
	if err := validateSameLen("nums_pulses", len(numsPulses), "dwell_times", len(dwellTimes)); err != nil {
		return nil, err
	}

	levels := make([]PulseLevel, len(numsPulses))
	for i := range levels {
		levels[i] = PulseLevel{NumPulses: numsPulses[i], DwellTime: dwellTimes[i]}
	}

	return levels, nil
}
