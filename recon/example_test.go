package recon_test

import (
	"fmt"

	"github.com/katalvlaran/l1video/linop"
	"github.com/katalvlaran/l1video/recon"
)

// ExampleReconstruct runs the degenerate denoising setup — identity
// measurement, identity basis — over two frames. Each frame reduces to
// soft thresholding of its measurement, and frame 2 is warm-started
// from frame 1's coefficients.
func ExampleReconstruct() {
	id := func(x []float64) ([]float64, error) {
		return append([]float64(nil), x...), nil
	}
	meas := [][]float64{
		{3, -2, 0.05, 0},
		{4, -2, 0, 0},
	}

	opts := recon.DefaultOptions()
	opts.Lambda = 1

	res, err := recon.Reconstruct(meas,
		recon.SharedMeasurement(linop.Pair{Forward: id, Adjoint: id}),
		linop.Transform{Apply: id, Invert: id},
		&opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for k, img := range res.Images {
		fmt.Printf("frame %d: %v\n", k+1, img)
	}
	// Output:
	// frame 1: [2 -1 0 0]
	// frame 2: [3 -1 0 0]
}
