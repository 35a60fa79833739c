package bufops

import (
	"sync"

	_ "github.com/cwbudde/algo-audiobuf/internal/kernel/generic" // register generic kernels
	"github.com/cwbudde/algo-audiobuf/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernels     *registry.OpEntry
	kernelsOnce sync.Once
)

// ops returns the kernel set for this CPU, resolving it on first use.
func ops() *registry.OpEntry {
	kernelsOnce.Do(initKernels)
	return kernels
}

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("bufops: no kernel registered (missing generic fallback?)")
	}

	if !entry.Complete() {
		panic("bufops: selected kernel " + entry.Name + " is incomplete")
	}

	kernels = entry
}

// KernelName reports which registered kernel variant serves this process.
func KernelName() string {
	return ops().Name
}
