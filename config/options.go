package config

import physconst "github.com/JackRBlack/physics-constant"

// Option modifies a Config, typically from a command-line flag.
type Option func(*Config)

// Apply applies each of opts to cfg in order.
func (cfg *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

func WithTemperature(u physconst.Unit) Option {
	return func(cfg *Config) {
		cfg.Temperature = TempUnit(u)
	}
}

func WithPrecision(n int) Option {
	return func(cfg *Config) {
		cfg.Precision = n
	}
}

func WithFormat(f Format) Option {
	return func(cfg *Config) {
		cfg.Format = f
	}
}

func WithSIPrefix(on bool) Option {
	return func(cfg *Config) {
		cfg.SIPrefix = on
	}
}

func WithColor(c ColorMode) Option {
	return func(cfg *Config) {
		cfg.Color = c
	}
}
