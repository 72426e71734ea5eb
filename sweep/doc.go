// SPDX-License-Identifier: MIT

// Package sweep builds and evaluates duty-cycle × pulse-count grids.
//
// For a fixed active burn time A, every cell (n, c) splits A into n pulses
// of length p = A/n and picks the dwell d that gives duty cycle c:
//
//	p / (p + d) = c   ⇒   d = p·(1 - c)/c
//
// and flattens the result with flatten.FlattenPulseHistory, so that
//
//	t_irr = n·p + (n-1)·d
//
// Cells are independent; Evaluate fans them out over a bounded pool of
// goroutines and writes each result into its own slot, so the output order
// never depends on scheduling.
//
// Config is YAML-decodable with the keys active_burn_time, duty_cycles and
// num_pulses.
package sweep
