package sparsa_test

import (
	"fmt"

	"github.com/katalvlaran/l1video/sparsa"
)

// ExampleSolve demonstrates the closed-form denoising case: with an
// identity measurement operator, BPDN reduces to soft thresholding of
// the noisy observation, so small entries are zeroed and large ones
// shrink by λ.
func ExampleSolve() {
	y := []float64{3, -2, 0.05, 0}
	id := func(x []float64) ([]float64, error) {
		return append([]float64(nil), x...), nil
	}

	opts := sparsa.DefaultOptions()
	opts.Lambda = 1

	res, err := sparsa.Solve(y, id, id, nil, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v\ncoeffs=%v\n", res.Converged, res.Coeffs)
	// Output:
	// converged=true
	// coeffs=[2 -1 0 0]
}
