package bufops

// Coefficients are direct-form-I biquad coefficients ordered [b0, b1, b2, a1, a2].
// a0 is normalized to 1 and not stored.
type Coefficients [5]float32

// NewCoefficients packs the feedforward (b) and feedback (a) terms.
func NewCoefficients(b0, b1, b2, a1, a2 float32) Coefficients {
	return Coefficients{b0, b1, b2, a1, a2}
}

// B0 returns the current-input coefficient.
func (c Coefficients) B0() float32 { return c[0] }

// B1 returns the one-sample-delayed input coefficient.
func (c Coefficients) B1() float32 { return c[1] }

// B2 returns the two-sample-delayed input coefficient.
func (c Coefficients) B2() float32 { return c[2] }

// A1 returns the one-sample-delayed output coefficient.
func (c Coefficients) A1() float32 { return c[3] }

// A2 returns the two-sample-delayed output coefficient.
func (c Coefficients) A2() float32 { return c[4] }

// State is the caller-owned biquad history ordered [x1, x2, y1, y2]: the two
// most recent inputs followed by the two most recent outputs.
type State [4]float32

// Reset zeroes the history.
func (s *State) Reset() {
	*s = State{}
}

// Biquad filters buf in place with one direct-form-I section:
//
//	y0 = b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2
//
// state is read before the first sample and written back once after the
// last, so consecutive calls continue the same filter history. An empty
// buffer leaves state untouched.
func Biquad(buf []float32, c Coefficients, state *State) {
	if len(buf) == 0 {
		return
	}
	*state = ops().Biquad(c, *state, buf)
}

// Lowpass applies one-pole exponential smoothing in place:
//
//	y[0] = x[0]
//	y[i] = y[i-1] + alpha*(x[i]-y[i-1])
//
// alpha is expected in [0, 1]; 1 passes the input through and 0 holds the
// first sample. No history survives between calls.
func Lowpass(buf []float32, alpha float32) {
	if len(buf) < 2 {
		return
	}

	prev := buf[0]
	for i := 1; i < len(buf); i++ {
		prev += alpha * (buf[i] - prev)
		buf[i] = prev
	}
}
