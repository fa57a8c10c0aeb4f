package recon

import "github.com/katalvlaran/l1video/linop"

// Source selects the measurement pair for each frame. It is a closed
// sum over the two legal configurations: one pair shared by every
// frame, or exactly one pair per frame. Construct via SharedMeasurement
// or PerFrameMeasurements; the zero Source is invalid and fails
// validation.
type Source struct {
	shared *linop.Pair
	frames []linop.Pair
}

// SharedMeasurement returns a Source applying the same measurement pair
// to every frame.
func SharedMeasurement(p linop.Pair) Source {
	return Source{shared: &p}
}

// PerFrameMeasurements returns a Source with one measurement pair per
// frame, selected by frame index. The slice length must equal the frame
// count; validation happens once at the start of Reconstruct.
func PerFrameMeasurements(ps []linop.Pair) Source {
	return Source{frames: ps}
}

// validate enforces the count invariant against T frames: exactly one
// shared pair or exactly T per-frame pairs, anything else is fatal.
func (s Source) validate(t int) error {
	if s.shared != nil {
		return nil
	}
	if len(s.frames) == t {
		return nil
	}

	return ErrMeasurementCount
}

// perFrame reports whether the active pair changes across frames.
func (s Source) perFrame() bool { return s.shared == nil }

// forFrame is the uniform accessor: the shared pair, or the pair at
// frame index k. Callers must validate first.
func (s Source) forFrame(k int) linop.Pair {
	if s.shared != nil {
		return *s.shared
	}

	return s.frames[k]
}
