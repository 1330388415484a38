package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-og/internal/domain/entity"
	"blog-og/internal/infra/renderer"
)

type stubDefault struct {
	img *renderer.Image
	err error
}

func (s stubDefault) Default() (*renderer.Image, error) { return s.img, s.err }

var okDefault = stubDefault{img: &renderer.Image{
	Variant: entity.VariantDefault, Width: 1200, Height: 630, PNG: make([]byte, 128),
}}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		renderer   DefaultImageSource
		wantCode   int
		wantStatus string
	}{
		{name: "healthy", renderer: okDefault, wantCode: http.StatusOK, wantStatus: "healthy"},
		{name: "default image failed", renderer: stubDefault{err: renderer.ErrDefaultUnavailable}, wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy"},
		{name: "not configured", renderer: nil, wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Renderer: tt.renderer, LogoSource: "monogram", Version: "1.2.3"}

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))

			var resp HealthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "1.2.3", resp.Version)
			assert.Equal(t, tt.wantStatus, resp.Checks["default_image"].Status)
			assert.Equal(t, "healthy", resp.Checks["logo"].Status)
		})
	}
}

func TestHealthHandler_DefaultImageDetails(t *testing.T) {
	check := checkDefaultImage(okDefault)
	assert.Equal(t, "healthy", check.Status)
	assert.Equal(t, 1200, check.Details["width"])
	assert.Equal(t, 128, check.Details["bytes"])

	check = checkDefaultImage(stubDefault{err: errors.New("no font")})
	assert.Equal(t, "no font", check.Message)
}

func TestReadyHandler_ServeHTTP(t *testing.T) {
	rr := httptest.NewRecorder()
	(&ReadyHandler{Renderer: okDefault}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ready", rr.Body.String())

	rr = httptest.NewRecorder()
	(&ReadyHandler{Renderer: stubDefault{err: renderer.ErrDefaultUnavailable}}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rr := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alive", rr.Body.String())
}

func TestRegisterProbes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterProbes(mux, &HealthHandler{Renderer: okDefault})

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}
