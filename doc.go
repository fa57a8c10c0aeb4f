// Package l1video reconstructs video sequences, frame by frame, from
// underdetermined linear measurements via sparse-coding optimization.
//
// 🚀 What is l1video?
//
//	Each frame is recovered by solving Basis-Pursuit-Denoising in a
//	sparsity basis: find coefficients x minimizing
//	  0.5·‖Measure(Synthesize(x)) − y‖₂² + λ·‖x‖₁
//	so that the synthesized image reproduces the observed measurement.
//	Consecutive frames are similar, so each solve is warm-started from
//	the previous frame's coefficients — the trick that makes per-frame
//	recovery cheap on real sequences.
//
// ✨ What's inside:
//   - operator-only interfaces: measurement processes and sparsity
//     bases plug in as plain function pairs, matrix-backed or matrix-free
//   - SpaRSA solver: proximal gradient, Barzilai-Borwein steps,
//     nonmonotone backtracking
//   - frame orchestration: warm starting, per-frame operator selection,
//     solve timing, opt-in rMSE/PSNR scoring and operator-call accounting
//
// Everything is organized under three subpackages:
//
//	linop/  — Op, Pair, Transform primitives, composition, call counting,
//	          dense gonum matrix adapter
//	sparsa/ — the per-frame BPDN solver
//	recon/  — the frame loop: measurement sources, warm-start threading,
//	          metrics, progress reporting
//
// Quick sketch:
//
//	measurements ──▶ recon.Reconstruct ──▶ images
//	                     │    ▲
//	       sparsa.Solve ◀┘    └─ warm start (previous frame)
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, and examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/l1video
package l1video
