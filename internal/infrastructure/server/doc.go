/*
Package server assembles the calculator HTTP server.

NewServer wires configuration, logging, metrics, tracing and the service
registry into a gin router, then wraps it with response compression when
enabled. Run blocks serving requests; Shutdown drains them and flushes the
tracer and logger.
*/
package server
