// Package observability groups the logging, metrics, tracing and timing
// infrastructure of the OG image service.
//
// Subpackages:
//   - logging: slog logger construction and context propagation
//   - metrics: Prometheus recorders for OG requests, renders and sanitization
//   - tracing: OpenTelemetry tracer provider, spans and HTTP middleware
//   - timing: per-stage duration monitors
//
// Example usage:
//
//	import (
//	    "blog-og/internal/observability/logging"
//	    "blog-og/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordOGRequest("article", "success")
//	}
package observability
