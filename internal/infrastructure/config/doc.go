// Package config provides 12-factor configuration for the calculation service.
//
// Configuration is loaded from environment variables with defaults. CLI flags
// in cmd/server override individual values after loading.
//
// Configuration Sections:
//   - Server: HTTP listen address
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting
//   - CORS: Allowed origins
//   - Compression: gzip responses
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED, RATE_LIMIT_GLOBAL
//   - CORS_ORIGINS (comma separated)
//   - GZIP_ENABLED
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
