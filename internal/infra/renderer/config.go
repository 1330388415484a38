package renderer

import (
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
)

// Config controls template appearance.
type Config struct {
	// DefaultScheme colours the shared default image.
	DefaultScheme ColorScheme
	// ArticleScheme colours the article image.
	ArticleScheme ColorScheme
	// TitleFontSize is the article title size in pixels.
	TitleFontSize float64
	// TitleMaxLines clamps the wrapped article title.
	TitleMaxLines int
	// FontData is a TTF/OTF font. Empty means Go Bold.
	FontData []byte
}

// DefaultConfig returns the stock templates.
func DefaultConfig() Config {
	return Config{
		DefaultScheme: SchemeLight,
		ArticleScheme: SchemeArticle,
		TitleFontSize: 88,
		TitleMaxLines: 2,
		FontData:      gobold.TTF,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := c.DefaultScheme.Validate(); err != nil {
		return fmt.Errorf("default scheme: %w", err)
	}
	if err := c.ArticleScheme.Validate(); err != nil {
		return fmt.Errorf("article scheme: %w", err)
	}
	if c.TitleFontSize <= 0 {
		return fmt.Errorf("title font size must be positive, got %v", c.TitleFontSize)
	}
	if c.TitleMaxLines < 1 {
		return fmt.Errorf("title max lines must be at least 1, got %d", c.TitleMaxLines)
	}
	return nil
}
