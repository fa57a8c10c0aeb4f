// Package recon reconstructs a video sequence frame by frame from
// underdetermined linear measurements by solving one Basis-Pursuit-
// Denoising problem per frame with the sparsa solver.
//
// 🚀 How it works:
//
//	For each frame k the orchestrator:
//	  1. selects the active measurement pair (one shared pair, or one
//	     pair per frame) and composes it with the sparsity transform;
//	  2. solves min 0.5·‖Forward(x) − y_k‖² + λ·‖x‖₁, warm-started
//	     from frame k−1's coefficients (zero start for frame 1);
//	  3. synthesizes the image via the transform's Invert;
//	  4. optionally scores it against ground truth (rMSE, PSNR) and
//	     records the measurement-operator call count and solve time.
//
// Frames are processed strictly sequentially: warm starting makes each
// solve depend on the previous frame's output, so the loop must not be
// parallelized without redesigning that contract.
//
// ✨ Key features:
//   - Source sum-type: one shared measurement pair or exactly one per
//     frame, validated once before any frame work (ErrMeasurementCount)
//   - explicit warm-start threading — the previous coefficient vector is
//     passed as-is into the next solve, never re-derived
//   - opt-in outputs: error metrics, operator-call counts and per-frame
//     convergence flags are computed only when requested; unrequested
//     result slices stay nil
//   - progress side channel via log/slog (NewProgressLogger wires a
//     colorized terminal handler); logging never alters numeric results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/l1video/recon"
//
//	opts := recon.DefaultOptions()
//	opts.Lambda = 0.01
//	opts.Tolerance = 1e-4
//	opts.CountOperatorCalls = true
//	opts.Logger = recon.NewProgressLogger(os.Stderr)
//
//	res, err := recon.Reconstruct(meas, recon.SharedMeasurement(pair), wavelet, &opts)
//	if err != nil {
//	  // handle ErrMeasurementCount / ErrNoFrames / collaborator failure
//	}
//	imgs := res.Images
//
// Solver non-convergence on a frame is a silent degradation: the best
// iterate is used and the loop continues. Callers that need the signal
// set Options.ConvergenceFlags and inspect Result.Converged.
//
// See examples in example_test.go.
package recon
