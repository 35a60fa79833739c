package buffer

import "sync"

// Sizer reports a preferred block length, such as effect.Unit's hint.
type Sizer interface {
	BufferSize() int
}

// Pool recycles Buffers between processing callbacks.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Return it with Put.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// GetFor returns a zeroed Buffer sized to s.BufferSize().
func (p *Pool) GetFor(s Sizer) *Buffer {
	return p.Get(s.BufferSize())
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
