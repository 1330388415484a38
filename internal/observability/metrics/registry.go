// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OG image metrics track how each request was answered and how long rendering took.
var (
	// OGImageRequestsTotal counts OG image requests by resolved variant and outcome.
	// Outcome is one of: success, not_modified, fallback, failed.
	OGImageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_image_requests_total",
			Help: "Total number of OG image requests by variant and outcome",
		},
		[]string{"variant", "outcome"},
	)

	// OGImageRenderDuration measures primary render time in seconds.
	// Buckets stop at the 3s render ceiling plus one overflow bucket.
	OGImageRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "og_image_render_duration_seconds",
			Help:    "Time taken to render an OG image",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 3, 5},
		},
		[]string{"variant"},
	)

	// OGImageFailuresTotal counts primary render failures by category (timeout, render_error).
	OGImageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_image_failures_total",
			Help: "Total number of failed primary OG renders by category",
		},
		[]string{"category"},
	)

	// OGImageBytes observes the size of PNG payloads served.
	OGImageBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "og_image_bytes",
			Help:    "Size of served OG image payloads in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"variant"},
	)
)

// Sanitization metrics track how often untrusted input had to be repaired.
var (
	// SanitizationIssuesTotal counts sanitization issues by field and issue tag.
	SanitizationIssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_sanitization_issues_total",
			Help: "Total number of sanitization issues by field and issue",
		},
		[]string{"field", "issue"},
	)
)

// Operation metrics capture every timed unit of work.
var (
	// OperationDuration measures timed operations in seconds.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "og_operation_duration_seconds",
			Help:    "Duration of timed OG operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
