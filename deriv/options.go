package deriv

import (
	"io"
	"os"
)

// Config holds the differentiation settings.
type Config struct {
	// Stride is the distance in samples between stencil points (xDelta).
	Stride int
	// Output receives one line per estimate. Nil means os.Stdout at call time.
	Output io.Writer
	// Format and Precision are passed to strconv.AppendFloat.
	Format    byte
	Precision int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns stride 1 and shortest round-trip formatting.
func DefaultConfig() Config {
	return Config{
		Stride:    1,
		Format:    'g',
		Precision: -1,
	}
}

// WithStride sets the stencil stride. Values below 1 are rejected by
// Differentiate.
func WithStride(stride int) Option {
	return func(cfg *Config) {
		cfg.Stride = stride
	}
}

// WithOutput sets the writer receiving the estimates.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Output = w
	}
}

// WithFormat sets the strconv format verb ('e', 'f', 'g', ...) and precision.
func WithFormat(format byte, precision int) Option {
	return func(cfg *Config) {
		switch format {
		case 'b', 'e', 'E', 'f', 'g', 'G', 'x', 'X':
			cfg.Format = format
			cfg.Precision = precision
		}
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
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return cfg
}
