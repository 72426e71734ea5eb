// Package fluxflat reduces pulsed irradiation schedules to an equivalent
// steady-state schedule with the same elapsed time and fluence.
//
// 🚀 What is fluxflat?
//
//	A small, deterministic, zero-global-state toolkit that brings together:
//		• Single-level flattening of uniform pulse trains
//		• Exact-final-pulses and compression (dwell-free) variants
//		• Nested (multiplicative) and additive multi-level composition
//		• Schedule-entry aggregation with inter-entry dwell
//		• Duty-cycle × pulse-count sweeps, evaluated in parallel
//
// ✨ Why choose fluxflat?
//
//   - Pure core – no I/O, no locks needed, safe from any goroutine
//   - Exact edge cases – single pulses and zero dwell never drift
//   - Localized errors – every failure names its entry, level and field
//
// Packages:
//
//	flatten/        — the numeric core: primitives, composers, aggregator
//	schedule/       — typed YAML schedule descriptions → flatten inputs
//	sweep/          — duty-cycle grids fanned out over a worker pool
//	internal/cli/   — the fluxflat command (pulse, flatten, sweep)
//
// Quick ASCII example (pulse = █, dwell = ·):
//
//	██·██··██·██
//
// is two trains of two unit pulses (dwell 1) separated by a dwell of 2:
// t_irr = 8, flux_factor = 4/8.
//
//	go install github.com/katalvlaran/fluxflat/cmd/fluxflat@latest
package fluxflat
