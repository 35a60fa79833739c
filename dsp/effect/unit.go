package effect

import (
	"fmt"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
)

// Unit applies a single gain to sample buffers.
type Unit struct {
	gain       float32
	bufferSize int
}

// New creates a Unit from DefaultConfig with opts applied.
//
// New panics if the resulting buffer-size hint is not positive: a zero hint
// is a programming error with no sensible recovery.
func New(opts ...Option) *Unit {
	cfg := ApplyOptions(opts...)
	if cfg.BufferSize <= 0 {
		panic(fmt.Sprintf("effect: buffer size must be > 0: %d", cfg.BufferSize))
	}

	return &Unit{
		gain:       cfg.Gain,
		bufferSize: cfg.BufferSize,
	}
}

// NewWithBufferSize creates a unity-gain Unit with the given hint.
// It panics if size is not positive.
func NewWithBufferSize(size int) *Unit {
	return New(WithBufferSize(size))
}

// SetGain replaces the gain. No bounds are enforced.
func (u *Unit) SetGain(gain float32) {
	u.gain = gain
}

// Gain returns the current gain.
func (u *Unit) Gain() float32 {
	return u.gain
}

// BufferSize returns the buffer-size hint.
func (u *Unit) BufferSize() int {
	return u.bufferSize
}

// Process writes input[i]*gain into output for i < min(len(input), len(output))
// and returns the number of samples written.
func (u *Unit) Process(input, output []float32) int {
	n := min(len(input), len(output))
	input, output = input[:n], output[:n]
	for i, x := range input {
		output[i] = x * u.gain
	}
	return n
}

// ProcessInPlace scales buf by the gain.
func (u *Unit) ProcessInPlace(buf []float32) {
	bufops.ApplyGain(buf, u.gain)
}
