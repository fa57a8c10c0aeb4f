// Package linop provides the linear-operator primitives shared by the
// l1video solver and orchestrator: single operator applications (Op),
// measurement capability pairs (Pair), sparsity-basis capability pairs
// (Transform), operator composition, invocation counting, and a dense
// gonum matrix adapter.
//
// 🚀 Why a separate package?
//
//	The SpaRSA solver and the frame orchestrator never look inside a
//	measurement process or a wavelet basis — they only ever apply them.
//	linop pins down that boundary as plain function values:
//	  • Op        — one linear application, x ↦ A·x, with explicit error
//	  • Pair      — {Forward, Adjoint} of a measurement process
//	  • Transform — {Apply, Invert} of a sparsity basis
//
// ✨ Key features:
//   - Compose: glue a measurement Pair and a Transform into the
//     coefficient-domain pair the solver consumes
//   - Counter: explicit per-run invocation tally (no global state),
//     numeric behavior of wrapped operators is untouched
//   - FromMatrix: adapt an explicit dense matrix A into {A·x, Aᵀ·y}
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/l1video/linop"
//
//	meas := linop.FromMatrix(a)            // a is a gonum mat.Matrix
//	var cnt linop.Counter
//	pair := linop.Compose(cnt.WrapPair(meas), wavelet)
//	y, err := pair.Forward(coeffs)         // coefficients → measurements
//
// Operators supplied by callers are treated as opaque collaborators:
// any error they return propagates unmodified.
//
// See examples in example_test.go.
package linop
