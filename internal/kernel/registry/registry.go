// Package registry provides the implementation registry for sample buffer kernels.
//
// Kernel packages register an [OpEntry] from their init() functions. The
// bufops package resolves the best entry for the current CPU once, on first
// use, and calls through its function fields afterwards.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// BiquadFn filters buf in place with one direct-form-I section and returns the
// updated history [x1, x2, y1, y2].
type BiquadFn func(c [5]float32, s [4]float32, buf []float32) [4]float32

// OpEntry represents a registered kernel implementation variant.
//
// Every field must be populated. Partial entries are rejected by the bufops
// dispatcher at resolve time.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic").
	Name string

	// SIMDLevel indicates the instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. The generic fallback uses 0.
	Priority int

	// ScaleInPlace performs dst[i] *= scale.
	ScaleInPlace func(dst []float32, scale float32)

	// AddInPlace performs dst[i] += src[i] over the common prefix.
	AddInPlace func(dst, src []float32)

	// MaxAbs returns max(|x[i]|), or 0 for an empty slice.
	MaxAbs func(x []float32) float32

	// SumSquares returns sum(x[i]*x[i]) accumulated in float64.
	SumSquares func(x []float32) float64

	// Biquad runs the direct-form-I recurrence over a block.
	Biquad BiquadFn
}

// Complete reports whether every kernel field is set.
func (e *OpEntry) Complete() bool {
	return e.ScaleInPlace != nil &&
		e.AddInPlace != nil &&
		e.MaxAbs != nil &&
		e.SumSquares != nil &&
		e.Biquad != nil
}

// OpRegistry manages the registration and lookup of kernel variants.
// Entries are kept ordered by descending priority; equal priorities keep
// registration order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default registry instance used by the bufops package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := slices.IndexFunc(r.entries, func(e OpEntry) bool {
		return e.Priority < entry.Priority
	})
	if at < 0 {
		at = len(r.entries)
	}
	r.entries = slices.Insert(r.entries, at, entry)
}

// Lookup returns the highest-priority entry the CPU supports, or nil when
// none does (the generic fallback was never registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	at := slices.IndexFunc(r.entries, func(e OpEntry) bool {
		return cpu.Supports(features, e.SIMDLevel)
	})
	if at < 0 {
		return nil
	}
	return &r.entries[at]
}

// ListEntries returns a copy of the registered entries in priority order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Reset drops every entry. Tests use it to build registries from scratch.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
