package pyrometer

import (
	"log/slog"

	"github.com/cwbudde/algo-pyrometer/radiation"
)

// Config holds model settings.
type Config struct {
	Units   radiation.Units
	Workers int
	Logger  *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns Celsius output, sequential fitting and no logging.
func DefaultConfig() Config {
	return Config{
		Units:   radiation.Celsius,
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithUnits sets the units estimates are presented in.
func WithUnits(units radiation.Units) Option {
	return func(cfg *Config) {
		cfg.Units = units
	}
}

// WithWorkers sets how many goroutines fit time samples in parallel.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithLogger sets the logger for fit and predict diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
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
	return cfg
}
