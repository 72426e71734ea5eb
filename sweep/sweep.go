// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fluxflat/flatten"
)

// LoadConfig reads a YAML grid definition from path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig parses a YAML grid definition with strict field checking.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges: A finite and > 0, every duty cycle in (0, 1],
// every pulse count ≥ 1, and both axes non-empty.
func (c *Config) Validate() error {
	if math.IsNaN(c.ActiveBurnTime) || math.IsInf(c.ActiveBurnTime, 0) || c.ActiveBurnTime <= 0 {
		return fmt.Errorf("%w: active_burn_time=%v must be finite and > 0", ErrInvalidConfig, c.ActiveBurnTime)
	}
	if len(c.DutyCycles) == 0 {
		return fmt.Errorf("%w: duty_cycles must be non-empty", ErrInvalidConfig)
	}
	if len(c.NumPulses) == 0 {
		return fmt.Errorf("%w: num_pulses must be non-empty", ErrInvalidConfig)
	}
	for i, dc := range c.DutyCycles {
		if math.IsNaN(dc) || dc <= 0 || dc > 1 {
			return fmt.Errorf("%w: duty_cycles[%d]=%v must lie in (0, 1]", ErrInvalidConfig, i, dc)
		}
	}
	for i, n := range c.NumPulses {
		if n < 1 {
			return fmt.Errorf("%w: num_pulses[%d]=%d must be >= 1", ErrInvalidConfig, i, n)
		}
	}

	return nil
}

// BuildGrid derives pulse length and dwell for every (n, c) pair. Rows
// follow cfg.NumPulses, columns follow cfg.DutyCycles.
func BuildGrid(cfg Config) (Grid, error) {
	if err := cfg.Validate(); err != nil {
		return Grid{}, err
	}

	g := Grid{Rows: len(cfg.NumPulses), Cols: len(cfg.DutyCycles)}
	g.Cells = make([]Cell, 0, g.Rows*g.Cols)
	for i, n := range cfg.NumPulses {
		p := cfg.ActiveBurnTime / float64(n)
		for j, dc := range cfg.DutyCycles {
			g.Cells = append(g.Cells, Cell{
				Row:         i,
				Col:         j,
				NumPulses:   n,
				DutyCycle:   dc,
				PulseLength: p,
				DwellTime:   p * (1 - dc) / dc,
			})
		}
	}

	return g, nil
}

// Evaluate flattens every cell of g concurrently. Results are returned in
// cell order. The first failing cell cancels the rest; a cancelled ctx
// stops scheduling and its error is returned.
//
// opts may be nil, meaning DefaultOptions().
func Evaluate(ctx context.Context, g Grid, opts *Options) ([]Result, error) {
	workers := runtime.GOMAXPROCS(0)
	if opts != nil {
		if opts.Workers < 0 {
			return nil, fmt.Errorf("%w: workers=%d must be >= 0", ErrInvalidConfig, opts.Workers)
		}
		if opts.Workers > 0 {
			workers = opts.Workers
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, len(g.Cells))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range g.Cells {
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := g.Cells[i]
			s, err := flatten.FlattenPulseHistory(c.PulseLength, c.NumPulses, c.DwellTime)
			if err != nil {
				return fmt.Errorf("sweep: cell (%d, %d): %w", c.Row, c.Col, err)
			}
			results[i] = Result{Cell: c, TIrr: s.TIrr, FluxFactor: s.FluxFactor}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
