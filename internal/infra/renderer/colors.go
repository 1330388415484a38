package renderer

import (
	"fmt"
	"regexp"
)

// ColorScheme is a named palette of #RRGGBB colours.
type ColorScheme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Border     string `yaml:"border"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
}

// Built-in palettes.
var (
	SchemeLight = ColorScheme{
		Background: "#FFFFFF",
		Foreground: "#252525",
		Border:     "#EBEBEB",
		Muted:      "#8D8D8D",
		Accent:     "#252525",
	}

	SchemeDark = ColorScheme{
		Background: "#1A1A1A",
		Foreground: "#F5F5F5",
		Border:     "#333333",
		Muted:      "#A8A8A8",
		Accent:     "#5B8DEF",
	}

	SchemeArticle = ColorScheme{
		Background: "#FFFFFF",
		Foreground: "#252525",
		Border:     "#EBEBEB",
		Muted:      "#8D8D8D",
		Accent:     "#5B8DEF",
	}
)

var schemesByName = map[string]ColorScheme{
	"light":   SchemeLight,
	"dark":    SchemeDark,
	"article": SchemeArticle,
}

// SchemeByName looks up a built-in palette.
func SchemeByName(name string) (ColorScheme, bool) {
	s, ok := schemesByName[name]
	return s, ok
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks every colour is a #RRGGBB literal.
func (s ColorScheme) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"border", s.Border},
		{"muted", s.Muted},
		{"accent", s.Accent},
	}
	for _, f := range fields {
		if !hexColor.MatchString(f.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidColor, f.name, f.value)
		}
	}
	return nil
}
