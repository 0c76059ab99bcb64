package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     LogConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Compression CompressionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	// Global shares one budget across all clients instead of one per IP.
	Global bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false"`
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// CompressionConfig holds response compression configuration.
type CompressionConfig struct {
	Enabled bool `envconfig:"GZIP_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Compression: CompressionConfig{
			Enabled: true,
		},
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Server.Port))
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("rate limit rps must be positive, got %d", c.RateLimit.RequestsPerSecond))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimit.Burst))
		}
	}

	if len(c.CORS.AllowOrigins) == 0 {
		errs = append(errs, errors.New("at least one CORS origin is required"))
	}

	return errors.Join(errs...)
}
