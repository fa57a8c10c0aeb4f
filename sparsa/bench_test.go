package sparsa_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/l1video/sparsa"
)

// benchmarkSolve runs Solve on an n-dimensional diagonal system with a
// deterministic sparse target. Setup time is excluded from the measurement.
func benchmarkSolve(b *testing.B, n int) {
	y := make([]float64, n)
	for i := range y {
		if i%7 == 0 {
			y[i] = math.Sin(float64(i)) * 5 // sparse support, deterministic values
		}
	}

	opts := sparsa.DefaultOptions()
	opts.Lambda = 0.05
	opts.Tolerance = 1e-6

	op := func(x []float64) ([]float64, error) {
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = 2 * v
		}

		return out, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparsa.Solve(y, op, op, nil, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small solves a 256-dimensional problem per iteration.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 256) }

// BenchmarkSolve_Medium solves a 4096-dimensional problem per iteration.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 4096) }

// BenchmarkSolve_Large solves a 65536-dimensional problem per iteration.
func BenchmarkSolve_Large(b *testing.B) { benchmarkSolve(b, 65536) }
