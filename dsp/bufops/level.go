package bufops

import "math"

// NormalizeTarget is the peak magnitude Normalize scales to.
const NormalizeTarget = 0.99

// Peak returns the largest absolute sample value, or 0 for an empty buffer.
func Peak(buf []float32) float32 {
	if len(buf) == 0 {
		return 0
	}
	return ops().MaxAbs(buf)
}

// RMS returns sqrt(sum(x[i]^2) / len(buf)).
//
// An empty buffer yields NaN (0/0); callers that meter possibly-empty blocks
// must check for it. Squares are summed in float64, so the result can differ
// in the last ulp from a float32 accumulation.
func RMS(buf []float32) float32 {
	if len(buf) == 0 {
		return float32(math.NaN())
	}
	return float32(math.Sqrt(ops().SumSquares(buf) / float64(len(buf))))
}

// Normalize scales buf so its peak magnitude becomes NormalizeTarget.
// An all-zero buffer is left unchanged.
func Normalize(buf []float32) {
	peak := Peak(buf)
	if peak > 0 {
		ApplyGain(buf, NormalizeTarget/peak)
	}
}

// Clip hard-limits every sample into [-1, 1]. In-range samples are not written.
func Clip(buf []float32) {
	for i, v := range buf {
		if v > 1 {
			buf[i] = 1
		} else if v < -1 {
			buf[i] = -1
		}
	}
}
