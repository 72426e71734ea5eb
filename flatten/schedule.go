// SPDX-License-Identifier: MIT

package flatten

// ReadSchedEntry flattens one schedule entry: the nested history built from
// pulseLength, numsPulses and phDwellTimes, followed by schedDwellTime of
// dead time. The dwell is added to t_irr only; it takes no part in the
// multiplicative composition and contributes no fluence.
//
// The returned ActiveBurnTime equals flux_factor · ph_t_irr of the history.
func ReadSchedEntry(pulseLength float64, numsPulses []int, phDwellTimes []float64, schedDwellTime float64, opts ...Option) (EntryResult, error) {
	levels, err := levelsOf(numsPulses, phDwellTimes)
	if err != nil {
		return EntryResult{}, err
	}

	return readEntry(PulseHistory{PulseLength: pulseLength, Levels: levels}, schedDwellTime, gatherOptions(opts))
}

// FlattenSchedule combines schedule entries into one global effective
// schedule:
//
//	t_irr  = Σ (entry history t_irr + entry trailing dwell)
//	active = Σ entry active burn time
//	ff     = active / t_irr
//
// The last entry's TrailingDwell is validated but treated as 0. A failing
// entry aborts the whole computation with an *EntryError.
func FlattenSchedule(entries []ScheduleEntry, opts ...Option) (EffectiveSchedule, error) {
	if len(entries) == 0 {
		return EffectiveSchedule{}, invalid(FieldEntries, 0)
	}

	o := gatherOptions(opts)
	var tIrr, active float64
	last := len(entries) - 1
	for i, e := range entries {
		dwell := e.TrailingDwell
		if err := validateDwell(FieldSchedDwellTime, dwell); err != nil {
			return EffectiveSchedule{}, &EntryError{Entry: i, Err: err}
		}
		if i == last {
			dwell = 0
		}

		r, err := readEntry(e.History, dwell, o)
		if err != nil {
			return EffectiveSchedule{}, &EntryError{Entry: i, Err: err}
		}
		tIrr += r.TIrr
		active += r.ActiveBurnTime
	}

	if err := validateTIrr(tIrr); err != nil {
		return EffectiveSchedule{}, err
	}

	return EffectiveSchedule{TIrr: tIrr, FluxFactor: active / tIrr, ActiveBurnTime: active}, nil
}

// CalcSimpleSchedFlattenedParams flattens a schedule whose entries all share
// one pulse-history shape (numsPulses, phDwellTimes) but differ in their
// innermost pulse length and inter-entry dwell. pulseLengths[i] and
// schedDwellTimes[i] describe entry i; the final dwell is forced to 0.
//
// Guarantee: FluxFactor · TIrr == Σ entry active burn time.
func CalcSimpleSchedFlattenedParams(pulseLengths, schedDwellTimes []float64, numsPulses []int, phDwellTimes []float64, opts ...Option) (EffectiveSchedule, error) {
	if err := validateSameLen("pulse_lengths", len(pulseLengths), "sched_dwell_times", len(schedDwellTimes)); err != nil {
		return EffectiveSchedule{}, err
	}
	levels, err := levelsOf(numsPulses, phDwellTimes)
	if err != nil {
		return EffectiveSchedule{}, err
	}

	entries := make([]ScheduleEntry, len(pulseLengths))
	for i := range entries {
		entries[i] = ScheduleEntry{
			History:       PulseHistory{PulseLength: pulseLengths[i], Levels: levels},
			TrailingDwell: schedDwellTimes[i],
		}
	}

	return FlattenSchedule(entries, opts...)
}

// readEntry is the shared body of ReadSchedEntry and FlattenSchedule.
// ActiveBurnTime is taken from the exact p0·Π n product, which is the same
// quantity as ff·t_irr without the round trip through the division.
func readEntry(h PulseHistory, schedDwell float64, o Options) (EntryResult, error) {
	if err := validateDwell(FieldSchedDwellTime, schedDwell); err != nil {
		return EntryResult{}, err
	}

	s, err := flattenHistory(h, o)
	if err != nil {
		return EntryResult{}, err
	}

	return EntryResult{TIrr: s.TIrr + schedDwell, ActiveBurnTime: s.ActiveBurnTime}, nil
}
