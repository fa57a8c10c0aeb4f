// Package linop: core operator types and sentinel errors.
package linop

import "errors"

// Sentinel errors for linop operations.
var (
	// ErrNilOperator indicates a nil Op was passed where an application is required.
	ErrNilOperator = errors.New("linop: operator is nil")
	// ErrDimensionMismatch indicates an input vector length incompatible with the operator.
	ErrDimensionMismatch = errors.New("linop: dimension mismatch")
)

// Op is one linear operator application: x ↦ A·x.
// Implementations must not mutate x and must return a freshly
// allocated result. Errors propagate unmodified to the caller.
type Op func(x []float64) ([]float64, error)

// Pair bundles the two directions of a measurement process.
//
//   - Forward: image → measurement
//   - Adjoint: measurement → image
//
// After Compose, the same shape carries the coefficient-domain pair
// (Forward: coefficients → measurement, Adjoint: measurement → coefficients).
type Pair struct {
	Forward Op
	Adjoint Op
}

// Transform bundles the two directions of a sparsity basis.
//
//   - Apply:  image → coefficient vector (analysis)
//   - Invert: coefficient vector → image (synthesis)
//
// A Transform is fixed for a whole sequence; only the measurement
// Pair may vary per frame.
type Transform struct {
	Apply  Op
	Invert Op
}
