// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fluxflat/sweep"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Workers int
}

// SweepRow is one cell of the sweep output.
type SweepRow struct {
	NumPulses   int     `json:"num_pulses"`
	DutyCycle   float64 `json:"duty_cycle"`
	PulseLength float64 `json:"pulse_length"`
	DwellTime   float64 `json:"dwell_time"`
	TIrr        float64 `json:"t_irr"`
	FluxFactor  float64 `json:"flux_factor"`
}

// SweepResult is the sweep command payload.
type SweepResult struct {
	ActiveBurnTime float64    `json:"active_burn_time"`
	Rows           []SweepRow `json:"rows"`
}

func (r SweepResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%10s %10s %12s %10s %10s %11s\n",
		"num_pulses", "duty_cycle", "pulse_length", "dwell_time", "t_irr", "flux_factor"); err != nil {
		return err
	}
	for _, c := range r.Rows {
		if _, err := fmt.Fprintf(w, "%10d %10.6g %12.6g %10.6g %10.6g %11.6g\n",
			c.NumPulses, c.DutyCycle, c.PulseLength, c.DwellTime, c.TIrr, c.FluxFactor); err != nil {
			return err
		}
	}
	return nil
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep <config.yaml>",
		Short: "Evaluate a duty-cycle × pulse-count grid",
		Long: `Split a fixed active burn time into each requested number of pulses,
derive the dwell for each requested duty cycle, and flatten every cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent cells (0 = GOMAXPROCS)")

	return cmd
}

func runSweep(opts *SweepOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := sweep.LoadConfig(path)
	if err != nil {
		if errors.Is(err, sweep.ErrInvalidConfig) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, "invalid sweep config", err)
		}
		return formatter.Fail(ExitCommandError, ErrCodeLoad, "failed to load sweep config", err)
	}
	grid, err := sweep.BuildGrid(*cfg)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, "invalid sweep config", err)
	}
	formatter.VerboseLog("sweeping %d×%d grid from %s", grid.Rows, grid.Cols, path)

	results, err := sweep.Evaluate(cmd.Context(), grid, &sweep.Options{Workers: opts.Workers})
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeCompute, "sweep failed", err)
	}

	out := SweepResult{ActiveBurnTime: cfg.ActiveBurnTime, Rows: make([]SweepRow, len(results))}
	for i, r := range results {
		out.Rows[i] = SweepRow{
			NumPulses:   r.NumPulses,
			DutyCycle:   r.DutyCycle,
			PulseLength: r.PulseLength,
			DwellTime:   r.DwellTime,
			TIrr:        r.TIrr,
			FluxFactor:  r.FluxFactor,
		}
	}

	return formatter.Success(out)
}
