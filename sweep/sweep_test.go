package sweep_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/fluxflat/flatten"
	"github.com/katalvlaran/fluxflat/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iterConfig() sweep.Config {
	return sweep.Config{
		ActiveBurnTime: 100,
		DutyCycles:     []float64{1, 0.5, 0.25},
		NumPulses:      []int{1, 2, 4},
	}
}

func TestBuildGrid(t *testing.T) {
	g, err := sweep.BuildGrid(iterConfig())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 3, g.Cols)
	require.Len(t, g.Cells, 9)

	// n=2, c=0.5 → p=50, d=50
	c := g.Cells[1*g.Cols+1]
	assert.Equal(t, 2, c.NumPulses)
	assert.Equal(t, 0.5, c.DutyCycle)
	assert.Equal(t, 50.0, c.PulseLength)
	assert.Equal(t, 50.0, c.DwellTime)

	// Full duty cycle has no dwell.
	for _, cell := range g.Cells {
		if cell.DutyCycle == 1 {
			assert.Equal(t, 0.0, cell.DwellTime)
		}
	}
}

func TestEvaluate(t *testing.T) {
	g, err := sweep.BuildGrid(iterConfig())
	require.NoError(t, err)

	res, err := sweep.Evaluate(context.Background(), g, &sweep.Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res, len(g.Cells))

	for i, r := range res {
		assert.Equal(t, g.Cells[i], r.Cell, "results keep cell order")
		// t_irr = n·p + (n-1)·d
		want := float64(r.NumPulses)*r.PulseLength + float64(r.NumPulses-1)*r.DwellTime
		assert.InEpsilon(t, want, r.TIrr, 1e-12)
		assert.InEpsilon(t, 100.0, r.FluxFactor*r.TIrr, 1e-12)

		direct, err := flatten.FlattenPulseHistory(r.PulseLength, r.NumPulses, r.DwellTime)
		require.NoError(t, err)
		assert.Equal(t, direct.TIrr, r.TIrr)
	}

	// n=4, c=0.25 → p=25, d=75, t_irr = 3·100 + 25
	last := res[len(res)-1]
	assert.Equal(t, 325.0, last.TIrr)
	assert.InDelta(t, 100.0/325.0, last.FluxFactor, 1e-12)
}

// TestEvaluate_WorkerCountsAgree checks that parallelism does not change results.
func TestEvaluate_WorkerCountsAgree(t *testing.T) {
	cfg := sweep.Config{ActiveBurnTime: 3600, DutyCycles: []float64{1, 0.9, 0.5, 0.25}, NumPulses: []int{2, 4, 8, 32, 64}}
	g, err := sweep.BuildGrid(cfg)
	require.NoError(t, err)

	serial, err := sweep.Evaluate(context.Background(), g, &sweep.Options{Workers: 1})
	require.NoError(t, err)
	for _, opts := range []*sweep.Options{nil, {Workers: 0}, {Workers: 3}, {Workers: 64}} {
		parallel, err := sweep.Evaluate(context.Background(), g, opts)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	g, err := sweep.BuildGrid(iterConfig())
	require.NoError(t, err)

	_, err = sweep.Evaluate(context.Background(), g, &sweep.Options{Workers: -1})
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sweep.Evaluate(ctx, g, nil)
	assert.ErrorIs(t, err, context.Canceled)

	// A dwell that overflows is reported by flatten through the cell.
	huge, err := sweep.BuildGrid(sweep.Config{ActiveBurnTime: 1e300, DutyCycles: []float64{1e-300}, NumPulses: []int{1}})
	require.NoError(t, err)
	_, err = sweep.Evaluate(context.Background(), huge, nil)
	require.ErrorIs(t, err, flatten.ErrInvalidInput)
	assert.Contains(t, err.Error(), "cell (0, 0)")
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]sweep.Config{
		"zero burn":      {ActiveBurnTime: 0, DutyCycles: []float64{1}, NumPulses: []int{1}},
		"no duty cycles": {ActiveBurnTime: 1, NumPulses: []int{1}},
		"no pulses":      {ActiveBurnTime: 1, DutyCycles: []float64{1}},
		"duty above one": {ActiveBurnTime: 1, DutyCycles: []float64{1.5}, NumPulses: []int{1}},
		"duty zero":      {ActiveBurnTime: 1, DutyCycles: []float64{0}, NumPulses: []int{1}},
		"zero pulses":    {ActiveBurnTime: 1, DutyCycles: []float64{1}, NumPulses: []int{0}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sweep.BuildGrid(cfg)
			assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := sweep.DecodeConfig(strings.NewReader("active_burn_time: 400\nduty_cycles: [1, 0.5]\nnum_pulses: [2, 4]\n"))
	require.NoError(t, err)
	assert.Equal(t, 400.0, cfg.ActiveBurnTime)
	assert.Equal(t, []float64{1, 0.5}, cfg.DutyCycles)
	assert.Equal(t, []int{2, 4}, cfg.NumPulses)

	_, err = sweep.DecodeConfig(strings.NewReader("active_burn_time: 400\nduty_cycle: [1]\nnum_pulses: [2]\n"))
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig, "unknown key")

	_, err = sweep.DecodeConfig(strings.NewReader(""))
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig, "empty")
}
