// Package main is the entry point for the engineering economics calculator
// HTTP server.
//
// The server provides:
//   - GET calculation endpoints for value, rate, factor and gradient requests
//   - Service discovery and tool execution over the provider registry
//   - Prometheus metrics at /metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
