package buffer

import "github.com/cwbudde/algo-audiobuf/dsp/bufops"

// Buffer owns a float32 sample slice that can be resized without
// reallocating while capacity allows.
type Buffer struct {
	samples []float32
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	return &Buffer{samples: make([]float32, max(length, 0))}
}

// FromSlice wraps an existing slice without copying.
func FromSlice(s []float32) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing capacity when possible. Samples
// exposed by growing are zeroed, including stale data left in reused capacity.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		grown := make([]float32, n)
		bufops.Copy(grown, b.samples)
		b.samples = grown
		return
	}

	b.samples = b.samples[:n]
	if n > oldLen {
		bufops.Clear(b.samples[oldLen:])
	}
}

// Zero sets every sample to 0.
func (b *Buffer) Zero() {
	bufops.Clear(b.samples)
}

// CopyFrom copies src into the buffer, truncating to the shorter length, and
// returns the number of samples copied.
func (b *Buffer) CopyFrom(src []float32) int {
	return bufops.Copy(b.samples, src)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := New(len(b.samples))
	c.CopyFrom(b.samples)
	return c
}
