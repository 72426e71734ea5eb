// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fluxflat/schedule"
)

// FlattenOptions holds flags for the flatten command.
type FlattenOptions struct {
	*RootOptions
	TotalFlux float64
}

// FlattenResult is the flatten command payload.
type FlattenResult struct {
	Composition    string   `json:"composition"`
	Segments       int      `json:"segments"`
	TIrr           float64  `json:"t_irr"`
	FluxFactor     float64  `json:"flux_factor"`
	ActiveBurnTime float64  `json:"active_burn_time"`
	AverageFlux    *float64 `json:"average_flux,omitempty"`
}

func (r FlattenResult) renderText(w io.Writer) error {
	if err := label(w, "composition", r.Composition); err != nil {
		return err
	}
	for _, kv := range []struct {
		name string
		v    float64
	}{
		{"segments", float64(r.Segments)},
		{"t_irr", r.TIrr},
		{"flux_factor", r.FluxFactor},
		{"active_burn_time", r.ActiveBurnTime},
	} {
		if err := row(w, kv.name, kv.v); err != nil {
			return err
		}
	}
	if r.AverageFlux != nil {
		return row(w, "average_flux", *r.AverageFlux)
	}
	return nil
}

// NewFlattenCommand creates the flatten command.
func NewFlattenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FlattenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "flatten <schedule.yaml>",
		Short: "Flatten a full schedule description",
		Long: `Load a YAML schedule description and reduce it to one effective
t_irr and flux factor.

With --total-flux F the average flux F / t_irr is reported as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.TotalFlux, "total-flux", 0, "measured total flux to average over t_irr")

	return cmd
}

func runFlatten(opts *FlattenOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	d, err := schedule.Load(path)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDescription) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidInput, "invalid schedule", err)
		}
		return formatter.Fail(ExitCommandError, ErrCodeLoad, "failed to load schedule", err)
	}
	mode, _ := d.Mode()
	formatter.VerboseLog("loaded %s: composition=%s entries=%d blocks=%d", path, mode, len(d.Entries), len(d.Blocks))

	res, err := d.Flatten()
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeCompute, "flattening failed", err)
	}

	out := FlattenResult{
		Composition:    mode.String(),
		Segments:       len(d.Entries) + len(d.Blocks),
		TIrr:           res.TIrr,
		FluxFactor:     res.FluxFactor,
		ActiveBurnTime: res.ActiveBurnTime,
	}
	if cmd.Flags().Changed("total-flux") {
		avg := opts.TotalFlux / res.TIrr
		out.AverageFlux = &avg
	}

	return formatter.Success(out)
}
