package effectchain

import (
	"fmt"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
	"github.com/cwbudde/algo-audiobuf/dsp/effect"
)

// DefaultRegistry returns a Registry with the built-in stage types:
//
//	gain:<g>                  gain unit, uses the chain's buffer-size hint
//	biquad:<b0>,<b1>,<b2>,<a1>,<a2>  direct-form-I section with its own history
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("gain", func(ctx Context, params []float32) (Stage, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("gain: want 1 parameter, got %d", len(params))
		}

		u := effect.New(effect.WithBufferSize(ctx.BufferSize), effect.WithGain(params[0]))

		return GainStage{Unit: u}, nil
	})
	r.MustRegister("biquad", func(_ Context, params []float32) (Stage, error) {
		if len(params) != len(bufops.Coefficients{}) {
			return nil, fmt.Errorf("biquad: want 5 coefficients, got %d", len(params))
		}

		var c bufops.Coefficients
		copy(c[:], params)

		return FilterStage{BiquadStage: effect.NewBiquadStage(c)}, nil
	})

	return r
}
