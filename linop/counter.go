package linop

// Counter tallies operator invocations for one frame's solve.
//
// It replaces the process-wide counter of classic SpaRSA drivers with an
// explicit object: the orchestrator owns one Counter, resets it before
// each frame, wraps the active measurement pair through it, and reads
// the tally after the solve (reset-then-read discipline).
//
// Counter is intentionally unsynchronized: frames are solved strictly
// sequentially, so only one goroutine ever touches it. A concurrent
// port needs one Counter per in-flight frame, not a shared one.
type Counter struct {
	n int
}

// Wrap returns an operator with numeric behavior identical to op that
// additionally increments the counter by one per invocation. Calls that
// return an error still count — the underlying operator was evaluated.
func (c *Counter) Wrap(op Op) Op {
	return func(x []float64) ([]float64, error) {
		c.n++

		return op(x)
	}
}

// WrapPair wraps both directions of a measurement pair, so the tally
// reflects true measurement-operator evaluations. Wrap the raw pair
// BEFORE composing with a Transform; wrapping a composed pair would
// count composite applications instead.
func (c *Counter) WrapPair(p Pair) Pair {
	return Pair{Forward: c.Wrap(p.Forward), Adjoint: c.Wrap(p.Adjoint)}
}

// Reset zeroes the tally.
func (c *Counter) Reset() { c.n = 0 }

// Count reports invocations since the last Reset.
func (c *Counter) Count() int { return c.n }
