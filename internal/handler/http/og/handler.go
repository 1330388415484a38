// Package og serves GET /api/og.
package og

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"blog-og/internal/domain/entity"
	"blog-og/internal/handler/http/respond"
	"blog-og/internal/observability/logging"
	"blog-og/internal/observability/metrics"
	"blog-og/internal/usecase/ogimage"
)

// Generator produces OG images. *ogimage.Service implements it.
type Generator interface {
	Generate(ctx context.Context, q url.Values) (ogimage.Result, error)
}

// ImageHandler answers OG image requests.
type ImageHandler struct {
	Svc Generator
	// Production enables ETag revalidation.
	Production bool
	Logger     *slog.Logger
}

func (h ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r.Context())
	fullURL := FullURL(r)

	logger.Info("OG image request received",
		slog.String("url", fullURL),
		slog.String("user_agent", headerOr(r, "User-Agent", "unknown")),
		slog.String("referer", headerOr(r, "Referer", "unknown")))

	if h.Production {
		etag := ETag(fullURL)
		if r.Header.Get(headerIfNoneMatch) == etag {
			logger.Info("cache hit: returning 304 Not Modified", slog.String("etag", etag))
			variant := entity.ResolveVariant(entity.ParamsFromQuery(r.URL.Query()).Type)
			metrics.RecordOGRequest(variant.String(), metrics.OutcomeNotModified)

			w.Header().Set(headerCacheControl, CacheLong)
			w.Header().Set(headerETag, etag)
			respond.Empty(w, http.StatusNotModified)
			return
		}
	}

	res, err := h.Svc.Generate(r.Context(), r.URL.Query())
	if err != nil || res.Image == nil {
		if err == nil {
			err = errors.New("generator returned no image")
		}
		logger.Error("failed to generate OG image",
			slog.String("url", fullURL),
			slog.Any("error", err))
		respond.PlainText(w, http.StatusInternalServerError, errorBody, map[string]string{
			"Content-Type":     contentTypeText,
			headerCacheControl: CacheNone,
			headerError:        errorHeaderValue,
		})
		return
	}

	hdr := w.Header()
	hdr.Set(headerCacheControl, CacheShort)
	if res.Fallback {
		hdr.Set(headerVary, "Accept")
		hdr.Set(headerImageType, imageTypeFallback)
	} else {
		hdr.Set(headerServerTiming, fmt.Sprintf("gen;dur=%d", res.Duration.Milliseconds()))
	}

	respond.Bytes(w, http.StatusOK, contentTypePNG, res.Image.PNG)
}

func (h ImageHandler) logger(ctx context.Context) *slog.Logger {
	if h.Logger != nil {
		return logging.WithRequestID(ctx, h.Logger)
	}
	return logging.FromContext(ctx)
}

func headerOr(r *http.Request, name, fallback string) string {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return fallback
}
