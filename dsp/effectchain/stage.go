package effectchain

import (
	"github.com/cwbudde/algo-audiobuf/dsp/effect"
)

// Stage is one in-place processing step of a Chain.
type Stage interface {
	// ProcessInPlace transforms buf. A non-nil error stops the chain.
	ProcessInPlace(buf []float32) error

	// Reset clears any history the stage keeps between blocks.
	Reset()
}

// GainStage adapts an effect.Unit to the Stage interface.
type GainStage struct {
	*effect.Unit
}

// ProcessInPlace scales buf by the unit's gain. It never fails.
func (g GainStage) ProcessInPlace(buf []float32) error {
	g.Unit.ProcessInPlace(buf)
	return nil
}

// Reset is a no-op; gain has no history.
func (GainStage) Reset() {}

// FilterStage adapts an effect.BiquadStage to the Stage interface.
type FilterStage struct {
	*effect.BiquadStage
}

// ProcessInPlace filters buf and keeps the section history. It never fails.
func (f FilterStage) ProcessInPlace(buf []float32) error {
	f.BiquadStage.ProcessInPlace(buf)
	return nil
}
