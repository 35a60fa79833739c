// Package generic holds the pure Go sample buffer kernels.
//
// These are plain bounds-checked loops. They are the baseline every other
// kernel variant must match bit for bit.
package generic

import (
	"github.com/cwbudde/algo-audiobuf/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic kernels with the global registry.
//
// Priority: 0 (lowest - used only when no other variant is compatible)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the generic kernel entry.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		ScaleInPlace: ScaleInPlace,
		AddInPlace:   AddInPlace,
		MaxAbs:       MaxAbs,
		SumSquares:   SumSquares,
		Biquad:       Biquad,
	}
}
