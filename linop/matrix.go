package linop

import (
	"gonum.org/v1/gonum/mat"
)

// FromMatrix adapts an explicit matrix A (rows×cols) into a measurement
// Pair:
//
//	Forward: x ↦ A·x   (len(x) must equal cols)
//	Adjoint: y ↦ Aᵀ·y  (len(y) must equal rows)
//
// Both directions validate the input length and return
// ErrDimensionMismatch on violation. The matrix is captured by
// reference; callers must not mutate it while the Pair is in use.
//
// FromMatrix is plumbing for caller-supplied matrices — designing the
// measurement matrix itself (random masks, structured sensing) stays
// with the caller.
func FromMatrix(a mat.Matrix) Pair {
	rows, cols := a.Dims()

	return Pair{
		Forward: func(x []float64) ([]float64, error) {
			if len(x) != cols {
				return nil, ErrDimensionMismatch
			}
			out := mat.NewVecDense(rows, nil)
			out.MulVec(a, mat.NewVecDense(cols, x))

			return vecData(out), nil
		},
		Adjoint: func(y []float64) ([]float64, error) {
			if len(y) != rows {
				return nil, ErrDimensionMismatch
			}
			out := mat.NewVecDense(cols, nil)
			out.MulVec(a.T(), mat.NewVecDense(rows, y))

			return vecData(out), nil
		},
	}
}

// vecData copies a VecDense into a plain slice.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawVector().Data)

	return out
}
