package recon

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// relMSE is the relative mean squared error Σ(img−gt)² / Σgt².
// An all-zero reference yields +Inf unless the reconstruction is also
// exactly zero.
func relMSE(img, gt []float64) float64 {
	den := floats.Dot(gt, gt)
	num := sqDiff(img, gt)
	if den == 0 {
		if num == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return num / den
}

// psnr is the peak signal-to-noise ratio in dB between a reconstruction
// and its reference. The peak is the reference frame's largest absolute
// value — inputs are abstract float images, not 8-bit pixels, so a
// fixed 255 peak would be meaningless. A perfect reconstruction yields
// +Inf.
func psnr(img, gt []float64) float64 {
	mse := sqDiff(img, gt) / float64(len(gt))
	if mse == 0 {
		return math.Inf(1)
	}
	var peak float64
	for _, v := range gt {
		peak = math.Max(peak, math.Abs(v))
	}

	return 10 * math.Log10(peak*peak/mse)
}

// sqDiff is Σ(a−b)² over paired entries.
func sqDiff(a, b []float64) float64 {
	var s float64
	for i := range b {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}
