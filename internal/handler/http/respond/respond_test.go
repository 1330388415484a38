package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "success with map",
			code:         http.StatusOK,
			data:         map[string]string{"status": "healthy"},
			expectedBody: `{"status":"healthy"}`,
		},
		{
			name:         "success with struct",
			code:         http.StatusCreated,
			data:         struct{ ID int }{ID: 123},
			expectedBody: `{"ID":123}`,
		},
		{
			name:         "nil body",
			code:         http.StatusNoContent,
			data:         nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestSafeError(t *testing.T) {
	t.Run("client error is returned as-is", func(t *testing.T) {
		w := httptest.NewRecorder()
		SafeError(w, http.StatusBadRequest, errors.New("invalid type"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid type"}`, w.Body.String())
	})

	t.Run("server error is masked", func(t *testing.T) {
		w := httptest.NewRecorder()
		SafeError(w, http.StatusInternalServerError, errors.New("open /etc/logo.png: permission denied"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		SafeError(w, http.StatusBadRequest, nil)
		assert.Equal(t, 0, w.Body.Len())
	})
}

func TestPlainText(t *testing.T) {
	w := httptest.NewRecorder()
	PlainText(w, http.StatusInternalServerError, "Error generating image", map[string]string{
		"X-Error": "Failed to generate OG image",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Failed to generate OG image", w.Header().Get("X-Error"))
	assert.Equal(t, "22", w.Header().Get("Content-Length"))
	assert.Equal(t, "Error generating image", w.Body.String())
}

func TestPlainText_ContentTypeOverride(t *testing.T) {
	w := httptest.NewRecorder()
	PlainText(w, http.StatusInternalServerError, "x", map[string]string{"Content-Type": "text/plain"})

	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
}

func TestBytes(t *testing.T) {
	w := httptest.NewRecorder()
	Bytes(w, http.StatusOK, "image/png", []byte{0x89, 'P', 'N', 'G'})

	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes())
}

func TestEmpty(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "image/png")
	Empty(w, http.StatusNotModified)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Header().Get("Content-Type"))
	assert.Equal(t, 0, w.Body.Len())
}

func TestMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	MethodNotAllowed(w, http.MethodGet, http.MethodHead)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
}
