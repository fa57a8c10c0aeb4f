package sparsa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/l1video/linop"
)

// backtrackCap bounds trials within one iteration; with Eta=2 and the
// default α clamp it is never reached before α saturates at AlphaMax.
const backtrackCap = 64

// Solve minimizes 0.5·‖fw(x) − y‖₂² + λ·‖x‖₁ by SpaRSA iterations.
//
// Algorithm outline:
//  1. Initialize x from x0 (copied, never mutated) or, when x0 is nil,
//     as the zero vector sized by one trial adjoint application adj(y).
//  2. Maintain residual r = fw(x) − y, gradient g = adj(r), objective
//     f = 0.5·‖r‖² + λ·‖x‖₁, and the last Memory objective values.
//  3. Per iteration, with spectral estimate α:
//     a. candidate x' = soft(x − g/α, λ/α); r' = fw(x') − y; f' likewise.
//     b. accept if f' ≤ max(recent objectives) − (σ·α/2)·‖x'−x‖²;
//     otherwise α ← min(α·Eta, AlphaMax) and retry. A candidate at
//     saturated α is accepted as-is (best effort, never an error).
//     c. refresh α by Barzilai-Borwein using r'−r = fw(x'−x):
//     α ← clamp(‖r'−r‖² / ‖x'−x‖², AlphaMin, AlphaMax).
//     d. stop once the relative objective change drops to Tolerance
//     (after MinIter accepted iterations).
//
// Errors:
//   - ErrEmptyMeasurement — y is empty.
//   - ErrNilOperator      — fw or adj is nil.
//   - ErrBadOption        — an option value outside its documented range.
//   - any operator failure propagates unmodified.
//
// Non-convergence within MaxIter is reported via Result.Converged, not
// as an error.
func Solve(y []float64, fw, adj linop.Op, x0 []float64, opts *Options) (*Result, error) {
	if len(y) == 0 {
		return nil, ErrEmptyMeasurement
	}
	if fw == nil || adj == nil {
		return nil, ErrNilOperator
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(&o); err != nil {
		return nil, err
	}

	// Initialization: copy the warm start, or size a zero vector from
	// one trial adjoint application.
	var x []float64
	if x0 != nil {
		x = append([]float64(nil), x0...)
	} else {
		trial, err := adj(y)
		if err != nil {
			return nil, err
		}
		x = make([]float64, len(trial))
	}

	ax, err := fw(x)
	if err != nil {
		return nil, err
	}
	if len(ax) != len(y) {
		return nil, fmt.Errorf("forward output length %d vs measurement %d: %w",
			len(ax), len(y), linop.ErrDimensionMismatch)
	}
	r := residual(ax, y)
	g, err := adj(r)
	if err != nil {
		return nil, err
	}
	f := objective(r, x, o.Lambda)

	// Ring of the last Memory accepted objectives for the nonmonotone
	// acceptance test.
	history := make([]float64, 1, o.Memory)
	history[0] = f

	alpha := 1.0
	converged := false
	iters := 0

	for it := 1; it <= o.MaxIter; it++ {
		fRef := floats.Max(history)

		var (
			xNew, rNew []float64
			fNew, dd   float64
		)
		for bt := 0; ; bt++ {
			xNew = proxStep(x, g, alpha, o.Lambda)
			axNew, ferr := fw(xNew)
			if ferr != nil {
				return nil, ferr
			}
			rNew = residual(axNew, y)
			fNew = objective(rNew, xNew, o.Lambda)

			dd = sqDist(xNew, x)
			if fNew <= fRef-0.5*o.Sigma*alpha*dd {
				break
			}
			if alpha >= o.AlphaMax || bt >= backtrackCap {
				break // best-effort acceptance at saturated step
			}
			alpha = math.Min(alpha*o.Eta, o.AlphaMax)
		}

		// Barzilai-Borwein refresh: rNew − r equals fw(xNew − x), so the
		// curvature along the step costs no extra operator call.
		if dd > 0 {
			dr := 0.0
			for i := range r {
				d := rNew[i] - r[i]
				dr += d * d
			}
			alpha = clamp(dr/dd, o.AlphaMin, o.AlphaMax)
		}

		relChange := math.Abs(fNew-f) / math.Max(math.Abs(f), math.SmallestNonzeroFloat64)
		x, r, f = xNew, rNew, fNew
		iters = it

		if g, err = adj(r); err != nil {
			return nil, err
		}
		if len(history) < o.Memory {
			history = append(history, f)
		} else {
			history[it%o.Memory] = f
		}

		if o.Logger != nil {
			o.Logger.Debug("sparsa iteration",
				"iter", it, "objective", f, "alpha", alpha, "rel_change", relChange)
		}

		if it >= o.MinIter && relChange <= o.Tolerance {
			converged = true

			break
		}
	}

	return &Result{
		Coeffs:     x,
		Iterations: iters,
		Objective:  f,
		Residual:   floats.Norm(r, 2),
		Converged:  converged,
	}, nil
}

// validateOptions fail-fasts on values outside documented ranges.
func validateOptions(o *Options) error {
	switch {
	case o.Lambda < 0:
		return fmt.Errorf("Lambda must be ≥ 0: %w", ErrBadOption)
	case o.Tolerance <= 0:
		return fmt.Errorf("Tolerance must be > 0: %w", ErrBadOption)
	case o.MaxIter < 1:
		return fmt.Errorf("MaxIter must be ≥ 1: %w", ErrBadOption)
	case o.MinIter < 1:
		return fmt.Errorf("MinIter must be ≥ 1: %w", ErrBadOption)
	case o.AlphaMin <= 0 || o.AlphaMin > o.AlphaMax:
		return fmt.Errorf("need 0 < AlphaMin ≤ AlphaMax: %w", ErrBadOption)
	case o.Eta <= 1:
		return fmt.Errorf("Eta must be > 1: %w", ErrBadOption)
	case o.Sigma <= 0 || o.Sigma >= 1:
		return fmt.Errorf("Sigma must be in (0, 1): %w", ErrBadOption)
	case o.Memory < 1:
		return fmt.Errorf("Memory must be ≥ 1: %w", ErrBadOption)
	}

	return nil
}

// proxStep evaluates soft(x − g/α, λ/α) in one pass.
func proxStep(x, g []float64, alpha, lambda float64) []float64 {
	out := make([]float64, len(x))
	tau := lambda / alpha
	for i := range x {
		out[i] = softThreshold(x[i]-g[i]/alpha, tau)
	}

	return out
}

// softThreshold is the scalar ℓ₁ proximal map: sign(v)·max(|v|−τ, 0).
func softThreshold(v, tau float64) float64 {
	switch {
	case v > tau:
		return v - tau
	case v < -tau:
		return v + tau
	default:
		return 0
	}
}

// residual computes ax − y into a fresh slice.
func residual(ax, y []float64) []float64 {
	r := make([]float64, len(ax))
	copy(r, ax)
	floats.Sub(r, y)

	return r
}

// objective is 0.5·‖r‖² + λ·‖x‖₁.
func objective(r, x []float64, lambda float64) float64 {
	return 0.5*floats.Dot(r, r) + lambda*floats.Norm(x, 1)
}

// sqDist is ‖a − b‖₂².
func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

// clamp pins v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
