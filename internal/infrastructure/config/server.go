package config

import "time"

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	// Listen address, e.g. ":8080"
	Address string `mapstructure:"address" validate:"required"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// PID file path for single-instance enforcement; empty disables it
	PIDFile string `mapstructure:"pid_file"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds the per-client request rate limit
type RateLimitConfig struct {
	// Enable request rate limiting
	Enabled bool `mapstructure:"enabled"`

	// Sustained requests per second per client
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"omitempty,gt=0"`

	// Burst allowance per client
	Burst int `mapstructure:"burst" validate:"omitempty,min=1"`
}

// MetricsConfig holds metrics exposure configuration
type MetricsConfig struct {
	// Enable the Prometheus registry and /metrics endpoint
	Enabled bool `mapstructure:"enabled"`
}
