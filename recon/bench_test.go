package recon_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/l1video/linop"
	"github.com/katalvlaran/l1video/recon"
)

// benchmarkReconstruct measures a full warm-started run over T frames
// of an n-dimensional diagonal system with a deterministic sparse scene.
func benchmarkReconstruct(b *testing.B, frames, n int) {
	scene := make([]float64, n)
	for i := range scene {
		if i%11 == 0 {
			scene[i] = math.Cos(float64(i)) * 3
		}
	}

	op := func(x []float64) ([]float64, error) {
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = 2 * v
		}

		return out, nil
	}
	id := func(x []float64) ([]float64, error) {
		return append([]float64(nil), x...), nil
	}

	meas := make([][]float64, frames)
	for k := range meas {
		y, _ := op(scene)
		meas[k] = y
	}

	opts := recon.DefaultOptions()
	opts.Lambda = 0.05
	opts.Tolerance = 1e-6

	src := recon.SharedMeasurement(linop.Pair{Forward: op, Adjoint: op})
	xf := linop.Transform{Apply: id, Invert: id}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := recon.Reconstruct(meas, src, xf, &opts); err != nil {
			b.Fatalf("Reconstruct failed: %v", err)
		}
	}
}

// BenchmarkReconstruct_ShortClip reconstructs 5 frames of 1024 pixels.
func BenchmarkReconstruct_ShortClip(b *testing.B) { benchmarkReconstruct(b, 5, 1024) }

// BenchmarkReconstruct_LongClip reconstructs 30 frames of 4096 pixels.
func BenchmarkReconstruct_LongClip(b *testing.B) { benchmarkReconstruct(b, 30, 4096) }
