// Package ogimage orchestrates Open Graph image generation.
//
// A request is sanitized, mapped to a template and rendered under a hard
// timeout. If rendering fails or loses the race against the timer, the shared
// default image is served instead. Only when that is also unavailable does the
// caller see an error.
package ogimage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"blog-og/internal/domain/entity"
	"blog-og/internal/infra/renderer"
	"blog-og/internal/observability/logging"
	"blog-og/internal/observability/metrics"
	"blog-og/internal/observability/timing"
	"blog-og/internal/observability/tracing"
	"blog-og/internal/usecase/sanitize"
)

// DefaultTimeout bounds a primary render.
const DefaultTimeout = 3000 * time.Millisecond

// ImageRenderer draws OG images. *renderer.Renderer implements it.
type ImageRenderer interface {
	Render(ctx context.Context, variant entity.Variant, title string) (*renderer.Image, error)
	Default() (*renderer.Image, error)
}

// Policies holds the sanitization policy for each text parameter.
type Policies struct {
	Title       sanitize.Policy
	Description sanitize.Policy
	Author      sanitize.Policy
}

// DefaultPolicies returns the stock field policies.
func DefaultPolicies() Policies {
	return Policies{
		Title:       sanitize.TitlePolicy,
		Description: sanitize.DescriptionPolicy,
		Author:      sanitize.AuthorPolicy,
	}
}

// WithDefaults replaces the fallback display values. Empty arguments keep
// the current value.
func (p Policies) WithDefaults(title, description, author string) Policies {
	if title != "" {
		p.Title = p.Title.WithDefault(title)
	}
	if description != "" {
		p.Description = p.Description.WithDefault(description)
	}
	if author != "" {
		p.Author = p.Author.WithDefault(author)
	}
	return p
}

// Params are the sanitized request parameters.
type Params struct {
	Title       string
	Description string
	Author      string
	Variant     entity.Variant
}

// Result is a served image.
type Result struct {
	Image    *renderer.Image
	Fallback bool
	Duration time.Duration
}

// Service generates OG images.
type Service struct {
	Renderer ImageRenderer
	// Timeout bounds the primary render. Zero means DefaultTimeout.
	Timeout time.Duration
	// Policies override the field policies. Zero value means DefaultPolicies.
	Policies *Policies
	Logger   *slog.Logger
}

type renderOutcome struct {
	image *renderer.Image
	err   error
}

// Generate renders the image described by q.
//
// The primary render runs in its own goroutine and races a timer. The losing
// side is abandoned; the render goroutine never blocks because its result
// channel is buffered. On timeout or render error the default image is
// returned with Result.Fallback set. ErrFallbackUnavailable is returned only
// when that also fails.
func (s *Service) Generate(ctx context.Context, q url.Values) (Result, error) {
	logger := s.logger(ctx)
	mon := timing.Start("og-image-generation", logger)

	raw := entity.ParamsFromQuery(q)
	variant := entity.ResolveVariant(raw.Type)

	ctx, span := tracing.StartSpan(ctx, "ogimage.Generate",
		attribute.String("og.variant", variant.String()))
	defer span.End()

	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan renderOutcome, 1)
	go func() {
		results <- s.render(renderCtx, raw, variant)
	}()

	timeout := s.timeout()
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var primaryErr error
	select {
	case out := <-results:
		if out.err == nil {
			sample := mon.End(slog.String("variant", variant.String()))
			metrics.RecordRenderDuration(variant.String(), sample.Duration)
			metrics.RecordImageBytes(variant.String(), len(out.image.PNG))
			metrics.RecordOGRequest(variant.String(), metrics.OutcomeSuccess)
			span.SetAttributes(attribute.Int64("og.duration_ms", sample.Milliseconds()))

			logger.Info("OG image generated successfully",
				slog.String("variant", variant.String()),
				slog.Int64("duration_ms", sample.Milliseconds()),
				slog.Int("bytes", len(out.image.PNG)))
			return Result{Image: out.image, Duration: sample.Duration}, nil
		}
		primaryErr = fmt.Errorf("%w: %w", ErrRenderFailed, out.err)
	case <-timer.C:
		cancel()
		primaryErr = fmt.Errorf("%w: operation timed out after %dms", ErrRenderTimeout, timeout.Milliseconds())
	}

	category := failureCategory(primaryErr)
	metrics.RecordRenderFailure(category)
	span.RecordError(primaryErr)
	if category == categoryTimeout {
		logger.Warn("OG image generation timed out",
			slog.String("variant", variant.String()),
			slog.Int64("timeout_ms", timeout.Milliseconds()),
			slog.Any("error", primaryErr))
	} else {
		logger.Error("OG image generation error",
			slog.String("variant", variant.String()),
			slog.Any("error", primaryErr))
	}

	logger.Info("attempting to serve fallback image")
	res, err := s.Fallback(ctx)
	if err != nil {
		sample := mon.End(slog.Bool("failed", true))
		metrics.RecordOGRequest(variant.String(), metrics.OutcomeFailed)
		span.SetStatus(codes.Error, "fallback unavailable")

		err = fmt.Errorf("%w (primary: %w)", err, primaryErr)
		logger.Error("fallback image generation failed",
			slog.String("original_error", primaryErr.Error()),
			slog.Int64("duration_ms", sample.Milliseconds()),
			slog.Any("error", err))
		return Result{Duration: sample.Duration}, err
	}

	sample := mon.End(slog.Bool("fallback", true))
	metrics.RecordOGRequest(variant.String(), metrics.OutcomeFallback)
	metrics.RecordImageBytes(res.Image.Variant.String(), len(res.Image.PNG))
	span.SetAttributes(attribute.Bool("og.fallback", true))

	logger.Info("fallback image served",
		slog.Int64("duration_ms", sample.Milliseconds()),
		slog.String("category", category))
	res.Duration = sample.Duration
	return res, nil
}

// Fallback returns the shared default image marked as a fallback.
func (s *Service) Fallback(ctx context.Context) (Result, error) {
	logger := s.logger(ctx)
	mon := timing.Start("og-fallback-image", logger)

	_, span := tracing.StartSpan(ctx, "ogimage.Fallback")
	defer span.End()

	img, err := s.Renderer.Default()
	if err == nil && img == nil {
		err = ErrNoImage
	}
	if err != nil {
		mon.End(slog.Bool("error", true))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("%w: %w", ErrFallbackUnavailable, err)
	}

	sample := mon.End()
	return Result{Image: img, Fallback: true, Duration: sample.Duration}, nil
}

// Sanitize cleans the raw parameters. The variant is resolved from the raw
// type value.
func (s *Service) Sanitize(ctx context.Context, raw entity.RequestParameters) Params {
	p := s.policies()
	sz := sanitize.Sanitizer{Logger: s.logger(ctx)}

	title := sz.Sanitize(ctx, raw.Title, p.Title)
	description := sz.Sanitize(ctx, raw.Description, p.Description)
	author := sz.Sanitize(ctx, raw.Author, p.Author)

	params := Params{
		Title:       title.Value,
		Description: description.Value,
		Author:      author.Value,
		Variant:     entity.ResolveVariant(raw.Type),
	}

	s.logger(ctx).Debug("OG image parameters processed",
		slog.String("title", changeLabel(title)),
		slog.String("description", changeLabel(description)),
		slog.String("author", changeLabel(author)),
		slog.String("type", params.Variant.String()),
		slog.Int("title_length", utf8.RuneCountInString(params.Title)),
		slog.Int("description_length", utf8.RuneCountInString(params.Description)))

	return params
}

func (s *Service) render(ctx context.Context, raw entity.RequestParameters, variant entity.Variant) (out renderOutcome) {
	logger := s.logger(ctx)
	mon := timing.Start("og-image-render", logger)

	// Runs on its own goroutine, out of reach of the HTTP Recover middleware.
	defer func() {
		if rec := recover(); rec != nil {
			mon.End(slog.Bool("error", true))
			logger.Error("render panic recovered",
				slog.String("variant", variant.String()),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			out = renderOutcome{err: fmt.Errorf("%w: %v", ErrRenderPanic, rec)}
		}
	}()

	params := s.Sanitize(ctx, raw)
	params.Variant = variant

	img, err := s.Renderer.Render(ctx, params.Variant, params.Title)
	if err == nil && img == nil {
		err = ErrNoImage
	}
	if err != nil {
		mon.End(slog.Bool("error", true))
		return renderOutcome{err: err}
	}
	mon.End(slog.String("variant", params.Variant.String()))
	return renderOutcome{image: img}
}

func (s *Service) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

func (s *Service) policies() Policies {
	if s.Policies != nil {
		return *s.Policies
	}
	return DefaultPolicies()
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return logging.WithRequestID(ctx, s.Logger)
	}
	return logging.FromContext(ctx)
}

func changeLabel(f sanitize.Field) string {
	if f.Modified() {
		return "sanitized"
	}
	return "unchanged"
}
