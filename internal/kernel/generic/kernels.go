package generic

// ScaleInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleInPlace(dst []float32, scale float32) {
	for i := range dst {
		dst[i] *= scale
	}
}

// AddInPlace performs dst[i] += src[i] for i < min(len(dst), len(src)).
func AddInPlace(dst, src []float32) {
	n := min(len(dst), len(src))
	dst = dst[:n]
	src = src[:n]
	for i := range dst {
		dst[i] += src[i]
	}
}

// MaxAbs returns the largest absolute value in x, or 0 if x is empty.
// NaN samples are skipped.
func MaxAbs(x []float32) float32 {
	var peak float32
	for _, v := range x {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// SumSquares returns the sum of x[i]^2 with a float64 accumulator.
func SumSquares(x []float32) float64 {
	var sum float64
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}
	return sum
}

// Biquad runs y0 = b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2 over buf in place
// and returns the history after the last sample.
func Biquad(c [5]float32, s [4]float32, buf []float32) [4]float32 {
	b0, b1, b2, a1, a2 := c[0], c[1], c[2], c[3], c[4]
	x1, x2, y1, y2 := s[0], s[1], s[2], s[3]

	for i, x0 := range buf {
		y0 := b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2
		buf[i] = y0

		x2, x1 = x1, x0
		y2, y1 = y1, y0
	}

	return [4]float32{x1, x2, y1, y2}
}
