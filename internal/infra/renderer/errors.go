package renderer

import (
	"errors"
	"fmt"

	"blog-og/internal/domain/entity"
)

var (
	// ErrDefaultUnavailable is returned by Default when the shared default
	// image could not be produced at startup.
	ErrDefaultUnavailable = errors.New("default image unavailable")

	// ErrInvalidColor is returned for colour values that are not #RRGGBB.
	ErrInvalidColor = errors.New("invalid colour")
)

// RenderError reports a failed render of one variant.
type RenderError struct {
	Variant entity.Variant
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("image rendering failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
