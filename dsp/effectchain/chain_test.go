package effectchain

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
	"github.com/cwbudde/algo-audiobuf/internal/testutil"
)

// stubStage records calls and optionally fails.
type stubStage struct {
	calls  int
	resets int
	err    error
	onCall func(buf []float32)
}

func (s *stubStage) ProcessInPlace(buf []float32) error {
	s.calls++
	if s.onCall != nil {
		s.onCall(buf)
	}
	return s.err
}

func (s *stubStage) Reset() { s.resets++ }

func TestChainNew(t *testing.T) {
	t.Parallel()

	c := New()
	if c.Len() != 0 {
		t.Fatalf("new chain has %d stages", c.Len())
	}
	if c.BufferSize() != 1024 {
		t.Fatalf("BufferSize() = %d, want 1024", c.BufferSize())
	}

	if New(WithBufferSize(256), nil).BufferSize() != 256 {
		t.Fatal("WithBufferSize not applied")
	}
}

func TestChainEmptyProcessIsNoop(t *testing.T) {
	t.Parallel()

	buf := []float32{0.1, -0.2}
	if err := New().Process(buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSamplesEqual(t, buf, []float32{0.1, -0.2})
}

func TestChainGainProductIsUnity(t *testing.T) {
	t.Parallel()

	c := New()
	c.AddGainStage(2.0)
	c.AddGainStage(0.5)

	buf := testutil.Ones(1024)
	if err := c.Process(buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSamplesEqual(t, buf, testutil.Ones(1024))
}

func TestChainMatchesSingleStageWithProductGain(t *testing.T) {
	t.Parallel()

	gains := []float32{1.5, -0.25, 3}
	var product float32 = 1

	c := New()
	for _, g := range gains {
		c.AddGainStage(g)
		product *= g
	}

	signal := testutil.DeterministicNoise(21, 0.5, 256)
	chained := testutil.Clone(signal)
	if err := c.Process(chained); err != nil {
		t.Fatalf("Process: %v", err)
	}

	single := testutil.Clone(signal)
	bufops.ApplyGain(single, product)

	testutil.RequireSamplesNearlyEqual(t, chained, single, 1e-6)
}

func TestChainBufferSizePropagatesAtInsertion(t *testing.T) {
	t.Parallel()

	c := New(WithBufferSize(512))
	first := c.AddGainStage(1)

	c.SetBufferSize(64)
	second := c.AddGainStage(1)

	if first.BufferSize() != 512 {
		t.Fatalf("first stage hint = %d, want 512", first.BufferSize())
	}
	if second.BufferSize() != 64 {
		t.Fatalf("second stage hint = %d, want 64", second.BufferSize())
	}

	gs, ok := c.Stage(0).(GainStage)
	if !ok || gs.Unit != first {
		t.Fatalf("Stage(0) = %#v, want first unit", c.Stage(0))
	}
}

func TestChainZeroBufferSizePanicsOnAdd(t *testing.T) {
	t.Parallel()

	c := New(WithBufferSize(0))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for zero buffer size")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "buffer size") {
			t.Fatalf("unexpected panic: %v", r)
		}
		if c.Len() != 0 {
			t.Fatalf("stage added despite panic: %d", c.Len())
		}
	}()

	c.AddGainStage(1)
}

func TestChainProcessOrder(t *testing.T) {
	t.Parallel()

	var order []int
	c := New()
	for i := range 3 {
		if err := c.AddStage(&stubStage{onCall: func([]float32) { order = append(order, i) }}); err != nil {
			t.Fatalf("AddStage: %v", err)
		}
	}

	if err := c.Process(make([]float32, 4)); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("processing order = %v", order)
	}
}

func TestChainOrderMattersForNonGainStages(t *testing.T) {
	t.Parallel()

	clip := &stubStage{onCall: bufops.Clip}

	gainThenClip := New()
	gainThenClip.AddGainStage(4)
	_ = gainThenClip.AddStage(clip)

	clipThenGain := New()
	_ = clipThenGain.AddStage(&stubStage{onCall: bufops.Clip})
	clipThenGain.AddGainStage(4)

	a := []float32{0.5}
	b := []float32{0.5}
	_ = gainThenClip.Process(a)
	_ = clipThenGain.Process(b)

	if a[0] != 1 || b[0] != 2 {
		t.Fatalf("gain->clip = %v, clip->gain = %v", a[0], b[0])
	}
}

func TestChainProcessStopsAtFailingStage(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	after := &stubStage{}

	c := New()
	c.AddGainStage(2)
	_ = c.AddStage(&stubStage{err: errBoom})
	_ = c.AddStage(after)

	buf := []float32{1}
	err := c.Process(buf)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
	if !strings.Contains(err.Error(), "stage 1") {
		t.Fatalf("error lacks stage index: %v", err)
	}
	if after.calls != 0 {
		t.Fatal("stage after failure was run")
	}
	if buf[0] != 2 {
		t.Fatalf("earlier stage result lost: %v", buf[0])
	}
}

func TestChainAddNilStage(t *testing.T) {
	t.Parallel()

	c := New()
	if err := c.AddStage(nil); !errors.Is(err, ErrNilStage) {
		t.Fatalf("expected ErrNilStage, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatal("nil stage was added")
	}
}

func TestChainAddTypedNilStage(t *testing.T) {
	t.Parallel()

	var typed *stubStage
	c := New()
	if err := c.AddStage(typed); err != nil {
		t.Fatalf("typed nil rejected: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic processing a typed nil stage")
		}
	}()
	_ = c.Process([]float32{1})
}

func TestChainBiquadStageKeepsHistory(t *testing.T) {
	t.Parallel()

	coeffs := bufops.NewCoefficients(0.1, 0.2, 0.1, -0.5, 0.2)
	signal := []float32{1.0, 0.5, -0.5, 0.0, 0.25}

	c := New()
	stage := c.AddBiquadStage(coeffs)

	first := testutil.Clone(signal[:2])
	second := testutil.Clone(signal[2:])
	_ = c.Process(first)
	_ = c.Process(second)

	want := testutil.Clone(signal)
	var s bufops.State
	bufops.Biquad(want, coeffs, &s)

	testutil.RequireSamplesEqual(t, append(first, second...), want)
	if stage.State() != s {
		t.Fatalf("stage state %v, want %v", stage.State(), s)
	}

	c.Reset()
	if stage.State() != (bufops.State{}) {
		t.Fatalf("Reset left history %v", stage.State())
	}
}

func TestChainResetReachesAllStages(t *testing.T) {
	t.Parallel()

	a, b := &stubStage{}, &stubStage{}
	c := New()
	_ = c.AddStage(a)
	c.AddGainStage(1)
	_ = c.AddStage(b)

	c.Reset()
	if a.resets != 1 || b.resets != 1 {
		t.Fatalf("resets = %d, %d", a.resets, b.resets)
	}
}

func TestChainProcessDoesNotAllocate(t *testing.T) {
	c := New()
	c.AddGainStage(0.5)
	c.AddBiquadStage(bufops.NewCoefficients(0.1, 0.2, 0.1, -0.5, 0.2))
	c.AddGainStage(2)

	buf := testutil.DeterministicNoise(4, 0.5, 1024)
	allocs := testing.AllocsPerRun(50, func() {
		_ = c.Process(buf)
	})
	if allocs != 0 {
		t.Fatalf("Process allocated %.1f times per run", allocs)
	}
}
