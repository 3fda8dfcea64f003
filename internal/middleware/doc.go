// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking,
request logging, gzip compression, and Prometheus metrics integration. These
components work alongside the authentication middleware to create a complete
middleware stack for HTTP request processing.

Key Components:

  - RequestID: UUID-based request tracking for distributed tracing
  - RequestLogger: One structured log line per request, slow requests at warn
  - Compression: Gzip compression for responses
  - PrometheusMetrics: HTTP request/response instrumentation

Middleware Stack:

The router applies middleware in this order:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)         // Layer 1: Request tracking
	r.Use(middleware.RequestLogger)     // Layer 2: Structured logging
	r.Use(middleware.PrometheusMetrics) // Layer 3: Metrics
	r.Use(middleware.Compression)       // Layer 4: Gzip

Usage Example - Request ID:

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("Processing request")
	}

Thread Safety:

All middleware components are thread-safe:
  - Compression pools gzip writers with sync.Pool
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/auth: Authentication middleware
  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
