// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"
	"runtime"
)

// ErrInvalidConfig is returned for an unusable grid definition or options.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// Config defines a grid.
type Config struct {
	// ActiveBurnTime is the total time at peak flux shared by every cell.
	ActiveBurnTime float64 `yaml:"active_burn_time"`

	// DutyCycles are fractions in (0, 1]; they form the grid columns.
	DutyCycles []float64 `yaml:"duty_cycles"`

	// NumPulses are pulse counts ≥ 1; they form the grid rows.
	NumPulses []int `yaml:"num_pulses"`
}

// Cell is one grid point with its derived pulse length and dwell.
type Cell struct {
	Row, Col    int
	NumPulses   int
	DutyCycle   float64
	PulseLength float64
	DwellTime   float64
}

// Grid is a row-major list of cells: Cells[Row*Cols+Col].
type Grid struct {
	Rows, Cols int
	Cells      []Cell
}

// Result is the flattened outcome of one cell.
type Result struct {
	Cell
	TIrr       float64
	FluxFactor float64
}

// Options configures Evaluate.
//
// Fields:
//   - Workers: maximum concurrent cells. 0 means runtime.GOMAXPROCS(0);
//     negative values are rejected.
type Options struct {
	Workers int
}

// DefaultOptions returns Options sized to the current GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}
