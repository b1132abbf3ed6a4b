/*
Package monitoring provides metrics collection for the catalog service.

# Overview

Metrics are registered on a registry owned by each Metrics value, so the
server and its tests can build independent collectors without clashing on
the global default registry.

# Metrics

- HTTP requests (count, latency, request and response size) labelled by route template
- Catalog slug lookups by outcome (hit, miss)
- Catalog packages per retreat type
- Contact enquiries by outcome (accepted, invalid, failed)
- Outbound service calls (the enquiry webhook)
- Uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", metrics.GinHandler())

	timer := monitoring.NewTimer(metrics, "contact", "webhook")
	// ... perform call ...
	timer.Stop("success")
*/
package monitoring
