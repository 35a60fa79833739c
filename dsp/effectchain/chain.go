package effectchain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
	"github.com/cwbudde/algo-audiobuf/dsp/effect"
)

// ErrNilStage is returned when a nil Stage is added to a chain.
var ErrNilStage = errors.New("effectchain: nil stage")

// Chain applies an ordered list of stages to a buffer, in place, in the
// order they were added.
//
// A chain of gain stages is equivalent to one stage with the product of
// their gains. Other stage types do not commute, so code must not reorder or
// fold stages based on that identity.
type Chain struct {
	bufferSize int
	stages     []Stage
}

// New returns an empty chain. The default buffer-size hint is 1024.
func New(opts ...Option) *Chain {
	cfg := applyOptions(opts...)
	return &Chain{bufferSize: cfg.bufferSize}
}

// BufferSize returns the hint given to stages added from now on.
func (c *Chain) BufferSize() int {
	return c.bufferSize
}

// SetBufferSize changes the hint for stages added later. Existing stages keep
// the hint they were built with.
func (c *Chain) SetBufferSize(size int) {
	c.bufferSize = size
}

// Context returns the settings passed to stage factories.
func (c *Chain) Context() Context {
	return Context{BufferSize: c.bufferSize}
}

// AddGainStage appends a gain unit built with the chain's current hint and
// returns it for later adjustment. It panics if the hint is not positive.
func (c *Chain) AddGainStage(gain float32) *effect.Unit {
	u := effect.New(effect.WithBufferSize(c.bufferSize), effect.WithGain(gain))
	c.stages = append(c.stages, GainStage{Unit: u})
	return u
}

// AddBiquadStage appends a biquad section with its own zero history.
func (c *Chain) AddBiquadStage(coeffs bufops.Coefficients) *effect.BiquadStage {
	b := effect.NewBiquadStage(coeffs)
	c.stages = append(c.stages, FilterStage{BiquadStage: b})
	return b
}

// AddStage appends an arbitrary stage. Only a nil interface is rejected with
// ErrNilStage; a typed nil pointer is accepted and panics in Process.
func (c *Chain) AddStage(s Stage) error {
	if s == nil {
		return ErrNilStage
	}
	c.stages = append(c.stages, s)
	return nil
}

// Len returns the number of stages.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Stage returns the stage at index i in processing order.
func (c *Chain) Stage(i int) Stage {
	return c.stages[i]
}

// Process runs every stage over buf in insertion order. It stops at the first
// stage error and reports its position. Built-in stages never fail.
func (c *Chain) Process(buf []float32) error {
	for i, s := range c.stages {
		if err := s.ProcessInPlace(buf); err != nil {
			return fmt.Errorf("effectchain: stage %d: %w", i, err)
		}
	}
	return nil
}

// Reset clears the history of every stage. The stage list is kept.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}
