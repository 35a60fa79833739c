package effectchain

import "github.com/cwbudde/algo-audiobuf/dsp/effect"

type config struct {
	bufferSize int
}

// Option configures a Chain.
type Option func(*config)

// WithBufferSize sets the hint handed to stages added afterwards.
// Non-positive values are kept and make the next AddGainStage panic.
func WithBufferSize(size int) Option {
	return func(c *config) { c.bufferSize = size }
}

func applyOptions(opts ...Option) config {
	cfg := config{bufferSize: effect.DefaultBufferSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
