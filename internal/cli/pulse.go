// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fluxflat/flatten"
)

// PulseOptions holds flags for the pulse command.
type PulseOptions struct {
	*RootOptions
	PulseLength   float64
	NumPulses     int
	DwellTime     float64
	TrailingDwell bool
	FinalPulses   int
	Compress      bool
}

// PulseResult is the pulse command payload.
type PulseResult struct {
	Mode           string  `json:"mode"`
	TIrr           float64 `json:"t_irr"`
	FluxFactor     float64 `json:"flux_factor"`
	ActiveBurnTime float64 `json:"active_burn_time"`
}

func (r PulseResult) renderText(w io.Writer) error {
	if err := label(w, "mode", r.Mode); err != nil {
		return err
	}
	if err := row(w, "t_irr", r.TIrr); err != nil {
		return err
	}
	if err := row(w, "flux_factor", r.FluxFactor); err != nil {
		return err
	}
	return row(w, "active_burn_time", r.ActiveBurnTime)
}

// NewPulseCommand creates the pulse command.
func NewPulseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PulseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Flatten one level of uniform pulses",
		Long: `Flatten a single train of uniform pulses separated by a constant dwell.

With --final-pulses N the last N pulses are left out of the flattened
portion. With --compress all dwell is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPulse(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.PulseLength, "pulse-length", 0, "duration of each pulse")
	cmd.Flags().IntVar(&opts.NumPulses, "num-pulses", 1, "number of pulses")
	cmd.Flags().Float64Var(&opts.DwellTime, "dwell-time", 0, "zero-flux gap between pulses")
	cmd.Flags().BoolVar(&opts.TrailingDwell, "trailing-dwell", false, "charge a dwell after the final pulse")
	cmd.Flags().IntVar(&opts.FinalPulses, "final-pulses", 0, "trailing pulses kept out of the flattened portion")
	cmd.Flags().BoolVar(&opts.Compress, "compress", false, "drop all dwell (compression)")
	_ = cmd.MarkFlagRequired("pulse-length")

	return cmd
}

func runPulse(opts *PulseOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	var (
		res flatten.EffectiveSchedule
		err error
	)
	mode := "flatten"
	switch {
	case opts.Compress:
		mode = "compress"
		var t float64
		t, err = flatten.CompressPulseHistory(opts.PulseLength, opts.NumPulses)
		res = flatten.EffectiveSchedule{TIrr: t, FluxFactor: 1, ActiveBurnTime: t}
	case cmd.Flags().Changed("final-pulses"):
		mode = "exact-final-pulses"
		res, err = flatten.FlattenExactFinalPulses(opts.PulseLength, opts.NumPulses, opts.DwellTime, opts.FinalPulses)
	default:
		var fopts []flatten.Option
		if opts.TrailingDwell {
			fopts = append(fopts, flatten.WithTrailingDwell())
		}
		res, err = flatten.FlattenPulseHistory(opts.PulseLength, opts.NumPulses, opts.DwellTime, fopts...)
	}
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeInvalidInput, "pulse "+mode+" failed", err)
	}
	formatter.VerboseLog("%s: pulse_length=%g num_pulses=%d dwell_time=%g", mode, opts.PulseLength, opts.NumPulses, opts.DwellTime)

	return formatter.Success(PulseResult{
		Mode:           mode,
		TIrr:           res.TIrr,
		FluxFactor:     res.FluxFactor,
		ActiveBurnTime: res.ActiveBurnTime,
	})
}
