// Package sparsa solves the Basis-Pursuit-Denoising (BPDN) problem
//
//	minimize  0.5·‖A(x) − y‖₂² + λ·‖x‖₁
//
// by Sparse Reconstruction by Separable Approximation: proximal-gradient
// (forward-backward splitting) iterations with a soft-threshold proximal
// step, a Barzilai-Borwein spectral step size, and nonmonotone
// backtracking line search.
//
// 🚀 What is SpaRSA?
//
//	Each iteration linearizes the smooth data-fit term around the current
//	iterate and solves the resulting separable subproblem in closed form:
//	  u       = x − (1/α)·Aᵀ(A(x) − y)
//	  x_next  = soft(u, λ/α)
//	The curvature estimate α is refreshed from the last step
//	(Barzilai-Borwein) and inflated by backtracking until the new iterate
//	passes a nonmonotone sufficient-decrease test against the worst of
//	the last Memory objective values.
//
// ✨ Key features:
//   - operator-only interface: A and Aᵀ are opaque linop.Op values, so
//     matrix-free measurement processes plug in directly
//   - warm starting: pass the previous solution as x0 (nil ⇒ zero start)
//   - relative-change stopping rule: |f_t − f_{t−1}| / |f_{t−1}| ≤ Tolerance
//   - non-convergence is not an error — the best iterate is returned with
//     Result.Converged=false
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/l1video/sparsa"
//
//	opts := sparsa.DefaultOptions()
//	opts.Lambda = 0.01
//	opts.Tolerance = 1e-4
//
//	res, err := sparsa.Solve(y, pair.Forward, pair.Adjoint, prev, &opts)
//	if err != nil {
//	  // handle ErrEmptyMeasurement / ErrNilOperator / ErrBadOption
//	  // or a propagated operator failure
//	}
//	x := res.Coeffs
//
// Operator-call cost per iteration: one adjoint application plus one
// forward application per backtracking trial (the residual difference
// rNew − r stands in for A(Δx), so the spectral step needs no extra
// forward call).
//
// Reference: Wright, Nowak, Figueiredo — "Sparse Reconstruction by
// Separable Approximation", IEEE Trans. Signal Processing, 2009.
//
// See examples in example_test.go.
package sparsa
