package effect

import "github.com/cwbudde/algo-audiobuf/dsp/bufops"

// BiquadStage is one direct-form-I biquad section with its own history.
//
// Unlike a bare [bufops.Biquad] call the state lives in the stage, so the
// stage must not be shared between independent signal paths.
type BiquadStage struct {
	coeffs bufops.Coefficients
	state  bufops.State
}

// NewBiquadStage returns a stage with the given coefficients and zero history.
func NewBiquadStage(c bufops.Coefficients) *BiquadStage {
	return &BiquadStage{coeffs: c}
}

// SetCoefficients replaces the coefficients and keeps the history.
func (b *BiquadStage) SetCoefficients(c bufops.Coefficients) {
	b.coeffs = c
}

// Coefficients returns the current coefficients.
func (b *BiquadStage) Coefficients() bufops.Coefficients {
	return b.coeffs
}

// State returns a copy of the current history [x1, x2, y1, y2].
func (b *BiquadStage) State() bufops.State {
	return b.state
}

// ProcessInPlace filters buf and carries the history into the next call.
func (b *BiquadStage) ProcessInPlace(buf []float32) {
	bufops.Biquad(buf, b.coeffs, &b.state)
}

// Reset clears the history.
func (b *BiquadStage) Reset() {
	b.state.Reset()
}
