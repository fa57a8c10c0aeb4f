// Package recon: options, result type, and sentinel errors.
package recon

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/l1video/sparsa"
)

// Sentinel errors for Reconstruct.
var (
	// ErrNoFrames indicates an empty measurement sequence.
	ErrNoFrames = errors.New("recon: measurement sequence must contain at least one frame")
	// ErrMeasurementCount indicates the measurement-pair count is neither 1 nor the frame count.
	// It is raised before any frame is processed; no partial results are produced.
	ErrMeasurementCount = errors.New("recon: measurement pair count must be exactly 1 or exactly the frame count")
	// ErrNilTransform indicates a sparsity transform with a missing direction.
	ErrNilTransform = errors.New("recon: transform Apply and Invert must be non-nil")
	// ErrGroundTruthLength indicates error metrics were requested without a
	// matching ground-truth sequence (one reference per frame, same length as
	// the reconstructed image).
	ErrGroundTruthLength = errors.New("recon: ground-truth sequence must match the frame sequence")
)

// Options configures a reconstruction run.
//
// Fields:
//   - Lambda    — ℓ₁ regularization weight handed to every frame's solve.
//   - Tolerance — relative-change stopping threshold for every solve.
//   - MaxIter   — per-frame solver iteration cap; 0 keeps the solver default.
//   - GroundTruth — optional reference images, one per frame; required
//     when ComputeErrorMetrics is set.
//   - ComputeErrorMetrics — populate Result.RelMSE and Result.PSNR.
//   - CountOperatorCalls  — wrap the active measurement pair through a
//     call counter and populate Result.OperatorCalls.
//   - ConvergenceFlags    — populate Result.Converged with each frame's
//     solver convergence signal. Off by default: non-convergence is a
//     silent degradation, matching the classic driver behavior.
//   - Logger — per-frame progress side channel; nil disables it.
type Options struct {
	Lambda              float64
	Tolerance           float64
	MaxIter             int
	GroundTruth         [][]float64
	ComputeErrorMetrics bool
	CountOperatorCalls  bool
	ConvergenceFlags    bool
	Logger              *slog.Logger
}

// DefaultOptions mirrors the solver defaults with all optional outputs
// disabled.
func DefaultOptions() Options {
	return Options{
		Lambda:    sparsa.DefaultLambda,
		Tolerance: sparsa.DefaultTolerance,
	}
}

// Result bundles the per-frame output sequences. Coeffs, Images and
// Elapsed always hold one entry per frame; the remaining slices are nil
// unless their computation was requested in Options. A Result is never
// mutated after Reconstruct returns.
type Result struct {
	Coeffs        [][]float64     // solver coefficient vectors
	Images        [][]float64     // synthesized images, t.Invert(coeffs)
	Elapsed       []time.Duration // wall-clock solve+synthesis time per frame
	RelMSE        []float64       // Σ(img−gt)²/Σgt², metrics opt-in
	PSNR          []float64       // peak signal-to-noise ratio in dB, metrics opt-in
	OperatorCalls []int           // measurement-operator evaluations, counting opt-in
	Converged     []bool          // per-frame solver convergence, flags opt-in
}
