package linop_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/l1video/linop"
)

// ExampleCounter demonstrates the per-frame accounting discipline:
// wrap the raw measurement pair, run a frame's worth of applications,
// read the tally, reset before the next frame.
func ExampleCounter() {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 2})

	var cnt linop.Counter
	pair := cnt.WrapPair(linop.FromMatrix(a))

	y, _ := pair.Forward([]float64{3, 4})
	_, _ = pair.Adjoint(y)
	fmt.Println("frame 1 calls:", cnt.Count())

	cnt.Reset()
	fmt.Println("frame 2 calls:", cnt.Count())
	// Output:
	// frame 1 calls: 2
	// frame 2 calls: 0
}

// ExampleCompose shows the solver-facing pair: coefficients go through
// the basis synthesis before measurement, measurements come back
// through the adjoint and basis analysis.
func ExampleCompose() {
	double := func(x []float64) ([]float64, error) {
		out := make([]float64, len(x))
		for i, v := range x {
			out[i] = 2 * v
		}

		return out, nil
	}
	id := func(x []float64) ([]float64, error) {
		return append([]float64(nil), x...), nil
	}

	pair := linop.Compose(
		linop.Pair{Forward: double, Adjoint: double},
		linop.Transform{Apply: id, Invert: id},
	)

	y, _ := pair.Forward([]float64{1, -2})
	back, _ := pair.Adjoint(y)
	fmt.Println(y, back)
	// Output:
	// [2 -4] [4 -8]
}
