package effectchain

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-audiobuf/internal/testutil"
)

func TestParseStages(t *testing.T) {
	t.Parallel()

	if _, err := ParseStages("gain:2 biquad:0.1, 0.2,0.1,-0.5,0.2"); err == nil {
		t.Fatal("expected error for space inside parameter list")
	}

	specs, err := ParseStages("gain:2 biquad:0.1,0.2,0.1,-0.5,0.2 gain:0.5 mute")
	if err != nil {
		t.Fatalf("ParseStages: %v", err)
	}

	if len(specs) != 4 {
		t.Fatalf("got %d specs, want 4", len(specs))
	}
	if specs[0].Type != "gain" || len(specs[0].Params) != 1 || specs[0].Params[0] != 2 {
		t.Fatalf("spec 0 = %+v", specs[0])
	}
	if specs[1].Type != "biquad" || len(specs[1].Params) != 5 || specs[1].Params[3] != -0.5 {
		t.Fatalf("spec 1 = %+v", specs[1])
	}
	if specs[3].Type != "mute" || specs[3].Params != nil {
		t.Fatalf("spec 3 = %+v", specs[3])
	}
}

func TestParseStagesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
	}{
		{"empty", "   "},
		{"missing type", ":1"},
		{"bad number", "gain:abc"},
		{"nan", "gain:NaN"},
		{"inf", "gain:+Inf"},
		{"trailing comma", "biquad:1,2,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseStages(tt.spec); err == nil {
				t.Fatalf("expected error for %q", tt.spec)
			}
		})
	}
}

func TestChainConfigure(t *testing.T) {
	t.Parallel()

	c := New(WithBufferSize(128))
	if err := c.Configure(DefaultRegistry(), "gain:2 gain:0.5"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	gs, ok := c.Stage(1).(GainStage)
	if !ok || gs.BufferSize() != 128 || gs.Gain() != 0.5 {
		t.Fatalf("Stage(1) = %#v", c.Stage(1))
	}

	buf := testutil.Ones(64)
	if err := c.Process(buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	testutil.RequireSamplesEqual(t, buf, testutil.Ones(64))
}

func TestChainConfigureIsAtomic(t *testing.T) {
	t.Parallel()

	c := New()
	err := c.Configure(DefaultRegistry(), "gain:2 reverb:1")
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("partial configure added %d stages", c.Len())
	}
}
