// Package logo resolves the brand logo composited into every Open Graph image.
//
// The logo comes from a local file, a remote URL, or, when neither is
// configured or both fail, a monogram drawn on the fly. PNG, JPEG and WebP
// payloads are accepted.
package logo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	_ "golang.org/x/image/webp"
)

// Source names where a resolved logo came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceURL      Source = "url"
	SourceMonogram Source = "monogram"
)

// Config controls logo resolution.
type Config struct {
	// Path is a local image file. Takes precedence over URL.
	Path string

	// URL is fetched over HTTP(S) when Path is empty or unreadable.
	URL string

	// FetchTimeout bounds a single HTTP attempt.
	FetchTimeout time.Duration

	// MaxBytes caps the size of the logo payload.
	MaxBytes int64

	// Initials are drawn by the monogram fallback.
	Initials string

	// MonogramSize is the edge length of the monogram in pixels.
	MonogramSize int
}

// DefaultConfig returns a Config with no file or URL, which yields the monogram.
func DefaultConfig() Config {
	return Config{
		FetchTimeout: 5 * time.Second,
		MaxBytes:     5 << 20,
		Initials:     "RZ",
		MonogramSize: 480,
	}
}

// Logo is a decoded logo image and where it came from.
type Logo struct {
	Image  image.Image
	Source Source
}

// Loader resolves logos. The zero value is not usable; use NewLoader.
type Loader struct {
	cfg     Config
	fetcher *Fetcher
	logger  *slog.Logger
}

// NewLoader creates a Loader. A nil logger falls back to slog.Default().
func NewLoader(cfg Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:     cfg,
		fetcher: NewFetcher(cfg.FetchTimeout, cfg.MaxBytes),
		logger:  logger,
	}
}

// Load returns the first logo that can be resolved. It never fails: file and
// URL errors are logged and the monogram is used instead.
func (l *Loader) Load(ctx context.Context) Logo {
	if l.cfg.Path != "" {
		img, err := l.loadFile(l.cfg.Path)
		if err == nil {
			l.logger.Info("logo loaded", slog.String("source", string(SourceFile)), slog.String("path", l.cfg.Path))
			return Logo{Image: img, Source: SourceFile}
		}
		l.logger.Warn("failed to load logo file",
			slog.String("path", l.cfg.Path),
			slog.Any("error", err))
	}

	if l.cfg.URL != "" {
		data, err := l.fetcher.Fetch(ctx, l.cfg.URL)
		if err == nil {
			var img image.Image
			img, err = Decode(data)
			if err == nil {
				l.logger.Info("logo loaded", slog.String("source", string(SourceURL)), slog.String("url", l.cfg.URL))
				return Logo{Image: img, Source: SourceURL}
			}
		}
		l.logger.Warn("failed to fetch logo",
			slog.String("url", l.cfg.URL),
			slog.Any("error", err))
	}

	img := Monogram(l.cfg.Initials, l.cfg.MonogramSize)
	l.logger.Info("using monogram logo", slog.String("initials", l.cfg.Initials))
	return Logo{Image: img, Source: SourceMonogram}
}

func (l *Loader) loadFile(path string) (image.Image, error) {
	// #nosec G304 -- path comes from operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logo file: %w", err)
	}
	if l.cfg.MaxBytes > 0 && int64(len(data)) > l.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	return Decode(data)
}

// Decode decodes a PNG, JPEG or WebP payload.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode logo (%s): %w", format, ErrEmptyImage)
	}
	return img, nil
}
