// Package transport holds the shape of a cross-thread sample transport buffer.
//
// Only capacity and position bookkeeping exist. There is no read or write
// path and no synchronization protocol; [Ring] must not be used to move
// samples between goroutines. A real single-producer/single-consumer
// transport would need monotonically increasing, wraparound-aware positions
// over a fixed power-of-two capacity, and is not provided here.
package transport

import (
	"fmt"
	"sync/atomic"
)

// Ring is a capacity-bounded sample store with separate read and write
// positions. Share it by pointer. Nothing advances the counters, so both
// stay at zero.
type Ring struct {
	data     []float32
	readPos  atomic.Uint64
	writePos atomic.Uint64
}

// New allocates a Ring holding capacity samples. It panics if capacity is
// not positive.
func New(capacity int) *Ring {
	if capacity <= 0 {
		panic(fmt.Sprintf("transport: capacity must be > 0: %d", capacity))
	}
	return &Ring{data: make([]float32, capacity)}
}

// Capacity returns the number of samples the ring can hold.
func (r *Ring) Capacity() int {
	return len(r.data)
}

// ReadPos returns the consumer position counter.
func (r *Ring) ReadPos() uint64 {
	return r.readPos.Load()
}

// WritePos returns the producer position counter.
func (r *Ring) WritePos() uint64 {
	return r.writePos.Load()
}
