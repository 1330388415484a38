package metrics

import (
	"time"
)

// Request outcomes recorded by RecordOGRequest.
const (
	OutcomeSuccess     = "success"
	OutcomeNotModified = "not_modified"
	OutcomeFallback    = "fallback"
	OutcomeFailed      = "failed"
)

// RecordOGRequest records how an OG request was answered.
func RecordOGRequest(variant, outcome string) {
	OGImageRequestsTotal.WithLabelValues(variant, outcome).Inc()
}

// RecordRenderDuration records the duration of a primary render attempt.
func RecordRenderDuration(variant string, duration time.Duration) {
	OGImageRenderDuration.WithLabelValues(variant).Observe(duration.Seconds())
}

// RecordRenderFailure records a failed primary render.
// Category should be "timeout" or "render_error".
func RecordRenderFailure(category string) {
	OGImageFailuresTotal.WithLabelValues(category).Inc()
}

// RecordImageBytes records the size of a served PNG.
func RecordImageBytes(variant string, size int) {
	OGImageBytes.WithLabelValues(variant).Observe(float64(size))
}

// RecordSanitizationIssue records one issue raised while sanitizing a field.
func RecordSanitizationIssue(field, issue string) {
	SanitizationIssuesTotal.WithLabelValues(field, issue).Inc()
}

// RecordOperationDuration records the duration of a timed operation.
func RecordOperationDuration(operation string, duration time.Duration) {
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
