package analysis

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput is returned by Spectrum for a zero-length buffer.
	ErrEmptyInput = errors.New("analysis: empty input")

	// ErrNotPowerOfTwo is returned by Spectrum when the length is not a power of two.
	ErrNotPowerOfTwo = errors.New("analysis: length must be a power of two")
)

// plans caches one FFT plan per size. Plans are not safe for concurrent use,
// so each entry guards its plan with a mutex.
var plans sync.Map // map[int]*planEntry

type planEntry struct {
	mu   sync.Mutex
	plan *algofft.Plan[complex128]
}

func planFor(n int) (*planEntry, error) {
	if e, ok := plans.Load(n); ok {
		return e.(*planEntry), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	e, _ := plans.LoadOrStore(n, &planEntry{plan: plan})
	return e.(*planEntry), nil
}

// Spectrum returns |X[k]| for k in [0, len(buf)/2] where X is the DFT of buf.
// No window is applied.
func Spectrum(buf []float32) ([]float64, error) {
	n := len(buf)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	entry, err := planFor(n)
	if err != nil {
		return nil, err
	}

	freq := make([]complex128, n)
	for i, v := range buf {
		freq[i] = complex(float64(v), 0)
	}

	entry.mu.Lock()
	err = entry.plan.Forward(freq, freq)
	entry.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("analysis: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, nil
}
