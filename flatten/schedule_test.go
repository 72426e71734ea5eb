package flatten_test

import (
	"testing"

	"github.com/katalvlaran/fluxflat/flatten"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalcSimpleSchedFlattenedParams_Scenario reproduces the reference aggregate (30, 16/30).
func TestCalcSimpleSchedFlattenedParams_Scenario(t *testing.T) {
	got, err := flatten.CalcSimpleSchedFlattenedParams(
		[]float64{2, 2}, []float64{2, 2}, []int{2, 2}, []float64{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.TIrr)
	assert.Equal(t, 16.0/30.0, got.FluxFactor)
	assert.Equal(t, 16.0, got.ActiveBurnTime)
	assert.InEpsilon(t, got.ActiveBurnTime, got.FluxFactor*got.TIrr, 1e-12)
}

func TestReadSchedEntry(t *testing.T) {
	got, err := flatten.ReadSchedEntry(2, []int{2, 2}, []float64{2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 16.0, got.TIrr)
	assert.Equal(t, 8.0, got.ActiveBurnTime)

	h, err := flatten.FlattenAllLevels(2, []int{2, 2}, []float64{2, 2})
	require.NoError(t, err)
	assert.InDelta(t, h.FluxFactor*h.TIrr, got.ActiveBurnTime, tol)

	_, err = flatten.ReadSchedEntry(2, []int{2}, []float64{2}, -1)
	var fe *flatten.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, flatten.FieldSchedDwellTime, fe.Field)
}

// TestFlattenSchedule_LastDwellIgnored ensures the final entry's dwell adds no time.
func TestFlattenSchedule_LastDwellIgnored(t *testing.T) {
	history := flatten.PulseHistory{PulseLength: 1, Levels: []flatten.PulseLevel{{NumPulses: 2, DwellTime: 1}}}

	a, err := flatten.FlattenSchedule([]flatten.ScheduleEntry{{History: history, TrailingDwell: 0}})
	require.NoError(t, err)
	b, err := flatten.FlattenSchedule([]flatten.ScheduleEntry{{History: history, TrailingDwell: 1e5}})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 3.0, a.TIrr)
}

// TestFlattenSchedule_MixedEntries checks fluence additivity across differently shaped entries.
func TestFlattenSchedule_MixedEntries(t *testing.T) {
	entries := []flatten.ScheduleEntry{
		{
			History:       flatten.PulseHistory{PulseLength: 1, Levels: []flatten.PulseLevel{{NumPulses: 2, DwellTime: 1}, {NumPulses: 2, DwellTime: 2}}},
			TrailingDwell: 10,
		},
		{
			History:       flatten.PulseHistory{PulseLength: 5, Levels: []flatten.PulseLevel{{NumPulses: 3, DwellTime: 0}}},
			TrailingDwell: 4,
		},
		{
			History: flatten.PulseHistory{PulseLength: 2, Levels: []flatten.PulseLevel{{NumPulses: 1, DwellTime: 9}}},
		},
	}

	got, err := flatten.FlattenSchedule(entries)
	require.NoError(t, err)
	// (8 + 10) + (15 + 4) + 2
	assert.Equal(t, 39.0, got.TIrr)
	// 4 + 15 + 2
	assert.Equal(t, 21.0, got.ActiveBurnTime)
	assert.Equal(t, 21.0/39.0, got.FluxFactor)
}

func TestFlattenSchedule_Errors(t *testing.T) {
	_, err := flatten.FlattenSchedule(nil)
	assert.ErrorIs(t, err, flatten.ErrInvalidInput)

	_, err = flatten.CalcSimpleSchedFlattenedParams([]float64{2}, []float64{2, 2}, []int{2}, []float64{2})
	assert.ErrorIs(t, err, flatten.ErrInvalidInput, "entry slices of different length")

	_, err = flatten.CalcSimpleSchedFlattenedParams([]float64{2, -1}, []float64{2, 2}, []int{2}, []float64{2})
	var ee *flatten.EntryError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.Entry)
	var fe *flatten.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, flatten.FieldPulseLength, fe.Field)

	// Negative dwell on the last entry is still rejected, even though it is ignored.
	_, err = flatten.CalcSimpleSchedFlattenedParams([]float64{2, 2}, []float64{2, -2}, []int{2}, []float64{2})
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.Entry)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, flatten.FieldSchedDwellTime, fe.Field)

	// Level failure inside an entry keeps both indices.
	_, err = flatten.CalcSimpleSchedFlattenedParams([]float64{2, 2}, []float64{2, 2}, []int{2, 0}, []float64{2, 2})
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 0, ee.Entry)
	var le *flatten.LevelError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Level)
	assert.Equal(t, "entry 0: level 1: num_pulses=0: flatten: invalid input", err.Error())
}
