package bufops

import "math"

const (
	// Int16ScaleIn is the divisor used when widening int16 samples to float32.
	// +32767 therefore maps to 0.999969..., not 1.0.
	Int16ScaleIn = 32768.0

	// Int16ScaleOut is the multiplier used when narrowing float32 samples to int16.
	Int16ScaleOut = 32767.0
)

// Int16ToFloat32 converts 16-bit PCM samples to float32: out[i] = in[i] / 32768.
// Conversion stops at min(len(in), len(out)).
func Int16ToFloat32(in []int16, out []float32) {
	n := min(len(in), len(out))
	in, out = in[:n], out[:n]
	for i, v := range in {
		out[i] = float32(v) / Int16ScaleIn
	}
}

// Float32ToInt16 converts float32 samples to 16-bit PCM. Each sample is
// clamped to [-1, 1], scaled by 32767 and truncated toward zero. NaN clamps to
// the lower bound and yields -32767.
// Conversion stops at min(len(in), len(out)).
func Float32ToInt16(in []float32, out []int16) {
	n := min(len(in), len(out))
	in, out = in[:n], out[:n]
	for i, v := range in {
		switch {
		case math.IsNaN(float64(v)):
			v = -1
		case v > 1:
			v = 1
		case v < -1:
			v = -1
		}
		out[i] = int16(v * Int16ScaleOut)
	}
}
