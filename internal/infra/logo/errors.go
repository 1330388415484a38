package logo

import "errors"

var (
	// ErrUnsupportedScheme is returned when the logo URL is not http or https.
	ErrUnsupportedScheme = errors.New("logo url must use http or https")

	// ErrTooLarge is returned when the logo payload exceeds Config.MaxBytes.
	ErrTooLarge = errors.New("logo exceeds size limit")

	// ErrEmptyImage is returned when a decoded logo has no pixels.
	ErrEmptyImage = errors.New("logo image is empty")
)
