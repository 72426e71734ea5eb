package flatten_test

import (
	"testing"

	"github.com/katalvlaran/fluxflat/flatten"
)

// benchmarkLevels folds a history of the given depth.
func benchmarkLevels(b *testing.B, depth int) {
	nums := make([]int, depth)
	dwells := make([]float64, depth)
	for i := range nums {
		nums[i] = 2 + i%5
		dwells[i] = float64(i + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatten.FlattenAllLevels(1, nums, dwells); err != nil {
			b.Fatalf("FlattenAllLevels failed: %v", err)
		}
	}
}

func BenchmarkFlattenPulseHistory(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := flatten.FlattenPulseHistory(2, 400, 6); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlattenLevels_Depth3(b *testing.B)  { benchmarkLevels(b, 3) }
func BenchmarkFlattenLevels_Depth16(b *testing.B) { benchmarkLevels(b, 16) }

func BenchmarkCalcSimpleSchedFlattenedParams(b *testing.B) {
	pulses := make([]float64, 64)
	dwells := make([]float64, 64)
	for i := range pulses {
		pulses[i] = float64(i%7 + 1)
		dwells[i] = 30
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatten.CalcSimpleSchedFlattenedParams(pulses, dwells, []int{4, 10}, []float64{1, 5}); err != nil {
			b.Fatal(err)
		}
	}
}
