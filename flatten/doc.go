// SPDX-License-Identifier: MIT

// Package flatten reduces pulsed irradiation histories to an equivalent
// steady-state schedule.
//
// 🚀 What is flux flattening?
//
//	A pulsed history is a train of bursts of constant flux separated by
//	zero-flux dwell gaps. Trains may nest (each outer pulse repeats the
//	inner train) and be grouped into schedule entries separated by their
//	own gaps. Flattening replaces the whole history with one constant-flux
//	interval that keeps
//	  • the total elapsed time  (t_irr)
//	  • the total fluence       (flux_factor · t_irr == active burn time)
//
// ✨ Components:
//   - FlattenPulseHistory      — one level of uniform pulses + dwell
//   - FlattenExactFinalPulses  — flatten all but a literal tail of pulses
//   - CompressPulseHistory     — dwell-free limit, t_irr only
//   - FlattenLevels            — nested (multiplicative) multi-level fold
//   - FlattenAdditive          — independent (summed) flat blocks
//   - CompressLevels           — nested fold of the compression primitive
//   - ReadSchedEntry / FlattenSchedule / CalcSimpleSchedFlattenedParams
//     — combine schedule entries into one global effective schedule
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fluxflat/flatten"
//
//	h := flatten.PulseHistory{
//	  PulseLength: 1,
//	  Levels: []flatten.PulseLevel{
//	    {NumPulses: 2, DwellTime: 1}, // innermost train
//	    {NumPulses: 2, DwellTime: 2}, // repeated twice
//	  },
//	}
//	res, err := flatten.FlattenLevels(h) // res.TIrr == 8, res.FluxFactor == 0.5
//
// Errors:
//
//	Every primitive validates eagerly and returns ErrInvalidInput (wrapped
//	in *FieldError) or ErrDegenerateResult. Composers never swallow a
//	primitive failure: they wrap it in *LevelError or *EntryError so the
//	faulty level or entry can be located, and return no partial result.
//
// Concurrency:
//
//	Every function is pure and allocation-light; calls are independent and
//	safe to run from any number of goroutines. Grid-style fan-out lives in
//	package sweep.
//
// Complexity: O(levels + entries) per call.
package flatten
