package analysis

import (
	"math"

	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
)

// Levels summarises the amplitude of a buffer.
type Levels struct {
	Peak   float32
	RMS    float32
	PeakDB float64
	RMSDB  float64
}

// LevelDB converts a linear amplitude to decibels relative to full scale.
// The sign of linear is ignored; 0 yields -Inf and NaN yields NaN.
func LevelDB(linear float32) float64 {
	v := math.Abs(float64(linear))
	switch {
	case math.IsNaN(v):
		return math.NaN()
	case v == 0:
		return math.Inf(-1)
	}
	return 20 * mathLog10(v)
}

// Measure returns the peak and RMS of buf. An empty buffer has zero peak and
// NaN RMS, following bufops.
func Measure(buf []float32) Levels {
	peak := bufops.Peak(buf)
	rms := bufops.RMS(buf)

	return Levels{
		Peak:   peak,
		RMS:    rms,
		PeakDB: LevelDB(peak),
		RMSDB:  LevelDB(rms),
	}
}
