package linop

// Compose glues a measurement Pair and a sparsity Transform into the
// coefficient-domain pair consumed by the BPDN solver:
//
//	Forward(coeffs) = m.Forward(t.Invert(coeffs))
//	Adjoint(meas)   = t.Apply(m.Adjoint(meas))
//
// The composed pair must be re-derived whenever the active measurement
// pair changes (per-frame measurement configurations); the Transform is
// fixed for the sequence. Compose itself performs no numeric work — the
// returned closures evaluate lazily on each application, and any error
// from either collaborator aborts the application and propagates
// unmodified.
func Compose(m Pair, t Transform) Pair {
	return Pair{
		Forward: func(coeffs []float64) ([]float64, error) {
			img, err := t.Invert(coeffs)
			if err != nil {
				return nil, err
			}

			return m.Forward(img)
		},
		Adjoint: func(meas []float64) ([]float64, error) {
			img, err := m.Adjoint(meas)
			if err != nil {
				return nil, err
			}

			return t.Apply(img)
		},
	}
}
