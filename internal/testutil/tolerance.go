package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSamplesNearlyEqual fails t if got and want differ in length or if
// any sample pair differs by more than eps (absolute tolerance).
func RequireSamplesNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSamplesEqual fails t unless got and want are bit-for-bit identical.
func RequireSamplesEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// NearlyEqual reports whether a and b are within eps, relative to the larger
// magnitude once that exceeds 1.
func NearlyEqual(a, b float32, eps float64) bool {
	diff := math.Abs(float64(a) - float64(b))
	scale := math.Max(1, math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	return diff <= eps*scale
}

// MaxAbsDiff returns the maximum absolute difference between two buffers.
// Returns an error if the buffers differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
