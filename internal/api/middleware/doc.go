// Package middleware provides the HTTP middleware stack: CORS, per-IP and
// global rate limiting, and gzip response compression.
package middleware
