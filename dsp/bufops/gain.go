package bufops

// ApplyGain multiplies every sample by gain in place. Any gain is accepted,
// including negative values (phase inversion) and zero.
func ApplyGain(buf []float32, gain float32) {
	if len(buf) == 0 {
		return
	}
	ops().ScaleInPlace(buf, gain)
}

// Mix adds src into dst sample by sample: dst[i] += src[i] for
// i < min(len(dst), len(src)). Samples past the shorter buffer are untouched.
func Mix(dst, src []float32) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	ops().AddInPlace(dst[:n], src[:n])
}
