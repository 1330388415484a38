package ogimage

import "errors"

// Sentinel errors for OG image generation.
var (
	// ErrRenderTimeout indicates the primary render did not finish within the
	// configured timeout.
	ErrRenderTimeout = errors.New("image generation timed out")

	// ErrRenderFailed indicates the primary render returned an error.
	ErrRenderFailed = errors.New("image generation failed")

	// ErrRenderPanic indicates the renderer panicked. It is always wrapped in
	// ErrRenderFailed.
	ErrRenderPanic = errors.New("render panicked")

	// ErrNoImage indicates a renderer returned neither an image nor an error.
	ErrNoImage = errors.New("renderer returned no image")

	// ErrFallbackUnavailable indicates the default image could not be served
	// after the primary render failed. Callers should answer with a plain
	// error response.
	ErrFallbackUnavailable = errors.New("fallback image unavailable")
)

// Failure categories used in logs and metrics.
const (
	categoryTimeout     = "timeout"
	categoryRenderError = "render_error"
)

func failureCategory(err error) string {
	if errors.Is(err, ErrRenderTimeout) {
		return categoryTimeout
	}
	return categoryRenderError
}
