// Package sparsa: options, result type, and sentinel errors.
package sparsa

import (
	"errors"
	"log/slog"
)

// Sentinel errors for Solve.
var (
	// ErrEmptyMeasurement indicates the measurement vector y is empty.
	ErrEmptyMeasurement = errors.New("sparsa: measurement vector must be non-empty")
	// ErrNilOperator indicates a nil forward or adjoint operator.
	ErrNilOperator = errors.New("sparsa: forward and adjoint operators must be non-nil")
	// ErrBadOption indicates an option value outside its documented range.
	ErrBadOption = errors.New("sparsa: invalid option value")
)

// Default option values. AlphaMin/AlphaMax bracket the spectral step so
// a degenerate Barzilai-Borwein estimate can never freeze or explode an
// iteration; Eta and Sigma follow the reference SpaRSA setting.
const (
	DefaultLambda    = 0.1
	DefaultTolerance = 1e-4
	DefaultMaxIter   = 1000
	DefaultMinIter   = 2
	DefaultAlphaMin  = 1e-30
	DefaultAlphaMax  = 1e+30
	DefaultEta       = 2.0
	DefaultSigma     = 0.01
	DefaultMemory    = 5
)

// Options configures a BPDN solve.
//
// Fields:
//   - Lambda    — ℓ₁ regularization weight λ ≥ 0. Larger values push the
//     solution toward sparsity; 0 reduces the prox step to the identity.
//   - Tolerance — stopping threshold > 0 for the relative change of the
//     objective between consecutive accepted iterates.
//   - MaxIter   — iteration cap ≥ 1. Hitting the cap is NOT an error:
//     Solve returns its best iterate with Converged=false.
//   - MinIter   — minimum iterations ≥ 1 before the stopping rule may
//     fire (guards against a lucky first step on a poor warm start).
//   - AlphaMin, AlphaMax — clamp for the spectral step-size estimate,
//     0 < AlphaMin ≤ AlphaMax.
//   - Eta       — backtracking growth factor > 1 applied to α until the
//     sufficient-decrease test passes.
//   - Sigma     — sufficient-decrease constant in (0, 1).
//   - Memory    — nonmonotone window ≥ 1: the acceptance test compares
//     against the maximum of the last Memory objective values
//     (Memory=1 recovers a monotone line search).
//   - Logger    — optional per-iteration diagnostics at Debug level;
//     nil suppresses all output. Logging never alters numeric results.
type Options struct {
	Lambda    float64
	Tolerance float64
	MaxIter   int
	MinIter   int
	AlphaMin  float64
	AlphaMax  float64
	Eta       float64
	Sigma     float64
	Memory    int
	Logger    *slog.Logger
}

// DefaultOptions returns the reference SpaRSA configuration.
func DefaultOptions() Options {
	return Options{
		Lambda:    DefaultLambda,
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		MinIter:   DefaultMinIter,
		AlphaMin:  DefaultAlphaMin,
		AlphaMax:  DefaultAlphaMax,
		Eta:       DefaultEta,
		Sigma:     DefaultSigma,
		Memory:    DefaultMemory,
	}
}

// Result carries the outcome of one BPDN solve.
//
// Converged reports whether the relative-change rule fired before the
// iteration cap. A false value is a quality signal, not a failure:
// Coeffs still holds the best iterate reached.
type Result struct {
	Coeffs     []float64 // minimizer estimate
	Iterations int       // accepted outer iterations performed
	Objective  float64   // final 0.5·‖A(x)−y‖² + λ·‖x‖₁
	Residual   float64   // final ‖A(x)−y‖₂
	Converged  bool      // stopping rule met within MaxIter
}
