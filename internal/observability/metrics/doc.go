// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the OG image service metrics:
//   - Request outcomes per template variant (success, not_modified, fallback, failed)
//   - Primary render duration and failure categories
//   - Sanitization issues per input field
//   - Durations of every timed operation
//
// HTTP transport metrics live next to the HTTP middleware in internal/handler/http.
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "blog-og/internal/observability/metrics"
//
//	func serve(variant string) {
//	    start := time.Now()
//	    // ... render ...
//	    metrics.RecordRenderDuration(variant, time.Since(start))
//	    metrics.RecordOGRequest(variant, metrics.OutcomeSuccess)
//	}
package metrics
