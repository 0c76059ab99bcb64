/*
Package monitoring provides Prometheus metrics for the calculation service.

# Overview

Collectors live on a dedicated registry, so several Metrics instances can
coexist (one per server, one per test) without duplicate registration panics.

# Metrics

- HTTP requests, latency, request and response sizes
- Calculation calls by service, tool and status
- Calculation errors by service, tool and error kind
- Process uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "values", "values.resolve")
	// ... run the calculation ...
	timer.Stop("success")
*/
package monitoring
