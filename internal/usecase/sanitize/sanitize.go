package sanitize

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"blog-og/internal/observability/logging"
	"blog-og/internal/observability/metrics"
)

// Field is the result of sanitizing one value.
type Field struct {
	// Value always satisfies the policy.
	Value string
	// Issues lists what was changed, in the order the steps ran.
	Issues []Issue
	// Defaulted is true when Value is the policy default.
	Defaulted bool
}

// Modified reports whether sanitization changed the input.
func (f Field) Modified() bool {
	return len(f.Issues) > 0
}

// Apply runs the step chain over raw. It never fails: unusable input yields
// the policy default.
func Apply(raw *string, p Policy) Field {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return Field{Value: p.DefaultValue, Defaulted: true}
	}

	s := strings.TrimSpace(*raw)
	var issues []Issue
	for _, step := range Steps {
		out, issue, useDefault := step(s, p)
		if issue != "" {
			issues = append(issues, issue)
		}
		if useDefault {
			return Field{Value: p.DefaultValue, Issues: issues, Defaulted: true}
		}
		s = out
	}
	return Field{Value: s, Issues: issues}
}

// String is Apply for a plain string value.
func String(raw string, p Policy) string {
	return Apply(&raw, p).Value
}

// Sanitizer applies policies and reports what it changed.
type Sanitizer struct {
	Logger *slog.Logger
}

// Sanitize cleans raw according to p, logging and counting any issues.
// Observability never affects the returned value.
func (s Sanitizer) Sanitize(ctx context.Context, raw *string, p Policy) Field {
	f := Apply(raw, p)
	logger := s.logger(ctx)

	if !f.Modified() {
		if f.Defaulted {
			logger.Debug("empty parameter provided, using default value",
				slog.String("param", p.Field),
				slog.String("default", p.DefaultValue))
		}
		return f
	}

	issues := make([]string, len(f.Issues))
	for i, issue := range f.Issues {
		issues[i] = string(issue)
		metrics.RecordSanitizationIssue(p.Field, string(issue))
	}

	originalLength := 0
	if raw != nil {
		originalLength = utf8.RuneCountInString(*raw)
	}
	logger.Warn("parameter required sanitization",
		slog.String("param", p.Field),
		slog.Any("issues", issues),
		slog.Bool("defaulted", f.Defaulted),
		slog.Int("original_length", originalLength),
		slog.Int("sanitized_length", utf8.RuneCountInString(f.Value)))

	return f
}

func (s Sanitizer) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return logging.WithRequestID(ctx, s.Logger)
	}
	return logging.FromContext(ctx)
}
