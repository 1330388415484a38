// Package http provides the shared HTTP plumbing for the OG image service:
// health probes, metrics, request logging, panic recovery and timeouts.
// Route handlers live in subpackages.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"blog-og/internal/infra/renderer"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// DefaultImageSource exposes the pre-rendered fallback image.
// *renderer.Renderer implements it.
type DefaultImageSource interface {
	Default() (*renderer.Image, error)
}

// HealthHandler reports whether the service can answer OG requests.
// The only hard dependency is the pre-rendered default image: without it a
// failed render has nothing to fall back to.
type HealthHandler struct {
	Renderer   DefaultImageSource
	LogoSource string
	Version    string
}

// ServeHTTP returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"default_image": checkDefaultImage(h.Renderer),
	}
	if h.LogoSource != "" {
		checks["logo"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"source": h.LogoSource},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status == "unhealthy" {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(r.Context(), w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func checkDefaultImage(src DefaultImageSource) CheckStatus {
	if src == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	img, err := src.Default()
	if err != nil {
		return CheckStatus{Status: "unhealthy", Message: err.Error()}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"width":  img.Width,
			"height": img.Height,
			"bytes":  len(img.PNG),
		},
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().ErrorContext(ctx, "health: failed to encode response", slog.Any("error", err))
	}
}

// ReadyHandler handles readiness probe requests.
// The service is ready once the default image exists.
type ReadyHandler struct {
	Renderer DefaultImageSource
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c := checkDefaultImage(h.Renderer); c.Status != "healthy" {
		http.Error(w, "default image not ready: "+c.Message, http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("probe: failed to write response", slog.Any("error", err))
	}
}

// RegisterProbes mounts /health, /ready, /live and /metrics.
func RegisterProbes(mux *http.ServeMux, health *HealthHandler) {
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &ReadyHandler{Renderer: health.Renderer})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
}
