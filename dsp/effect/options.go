package effect

const (
	// DefaultGain is unity gain.
	DefaultGain = 1.0

	// DefaultBufferSize is the buffer-size hint used when none is given.
	DefaultBufferSize = 1024
)

// Config defines the construction-time settings of a Unit.
type Config struct {
	Gain       float32
	BufferSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns unity gain and a 1024-sample hint.
func DefaultConfig() Config {
	return Config{
		Gain:       DefaultGain,
		BufferSize: DefaultBufferSize,
	}
}

// WithGain sets the initial gain. Any value is accepted.
func WithGain(gain float32) Option {
	return func(cfg *Config) {
		cfg.Gain = gain
	}
}

// WithBufferSize sets the buffer-size hint. The value is passed through
// unchanged so that New can reject non-positive sizes.
func WithBufferSize(size int) Option {
	return func(cfg *Config) {
		cfg.BufferSize = size
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
