// Package timing measures units of work for logging and metrics.
// Measurements are observational only: they never fail and never change control flow.
package timing

import (
	"log/slog"
	"time"

	"blog-og/internal/observability/metrics"
)

// Sample is one completed measurement.
type Sample struct {
	Operation string
	Start     time.Time
	End       time.Time
	Duration  time.Duration
}

// Milliseconds returns the duration in whole milliseconds.
func (s Sample) Milliseconds() int64 {
	return s.Duration.Milliseconds()
}

// Monitor measures a single operation started by Start.
type Monitor struct {
	operation string
	start     time.Time
	logger    *slog.Logger
	now       func() time.Time
}

// Start begins measuring operation. A nil logger uses slog.Default().
func Start(operation string, logger *slog.Logger) *Monitor {
	return startWithClock(operation, logger, time.Now)
}

func startWithClock(operation string, logger *slog.Logger, now func() time.Time) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		operation: operation,
		start:     now(),
		logger:    logger,
		now:       now,
	}
}

// End finishes the measurement, logs it with the given attributes and records
// the duration metric. End may be called more than once; each call measures
// from the original start.
func (m *Monitor) End(attrs ...slog.Attr) Sample {
	end := m.now()
	s := Sample{
		Operation: m.operation,
		Start:     m.start,
		End:       end,
		Duration:  end.Sub(m.start),
	}

	args := make([]any, 0, len(attrs)+2)
	args = append(args,
		slog.String("operation", s.Operation),
		slog.Int64("duration_ms", s.Milliseconds()),
	)
	for _, a := range attrs {
		args = append(args, a)
	}
	m.logger.Debug("operation completed", args...)
	metrics.RecordOperationDuration(s.Operation, s.Duration)

	return s
}
