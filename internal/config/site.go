package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blog-og/internal/infra/renderer"
)

// SiteConfig is the optional site file named by OG_SITE_CONFIG.
//
//	site:
//	  title: Design Engineer Blog
//	  description: Thoughts on design, engineering, and the intersection of both.
//	  author: Ricky Zhang
//	  initials: RZ
//	theme:
//	  default: light
//	  article: article
//	  schemes:
//	    brand:
//	      background: "#0B0B0F"
//	      foreground: "#FAFAFA"
//	      border: "#222222"
//	      muted: "#999999"
//	      accent: "#FF5A36"
type SiteConfig struct {
	Site struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Author      string `yaml:"author"`
		Initials    string `yaml:"initials"`
	} `yaml:"site"`
	Theme struct {
		Default string                          `yaml:"default"`
		Article string                          `yaml:"article"`
		Schemes map[string]renderer.ColorScheme `yaml:"schemes"`
	} `yaml:"theme"`
}

// LoadSiteConfig reads and validates a site file.
// The path parameter is expected to come from a trusted source (environment or CLI flag).
func LoadSiteConfig(path string) (*SiteConfig, error) {
	// #nosec G304 -- path comes from operator configuration, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("site config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *SiteConfig) validate() error {
	for name, scheme := range c.Theme.Schemes {
		if err := scheme.Validate(); err != nil {
			return fmt.Errorf("scheme %q: %w", name, err)
		}
	}
	for _, name := range []string{c.Theme.Default, c.Theme.Article} {
		if name == "" {
			continue
		}
		if _, err := c.Scheme(name); err != nil {
			return err
		}
	}
	return nil
}

// Scheme resolves a scheme by name, preferring schemes defined in the file
// over the built-in ones.
func (c *SiteConfig) Scheme(name string) (renderer.ColorScheme, error) {
	if s, ok := c.Theme.Schemes[name]; ok {
		return s, nil
	}
	if s, ok := renderer.SchemeByName(name); ok {
		return s, nil
	}
	return renderer.ColorScheme{}, fmt.Errorf("unknown colour scheme %q", name)
}

// RendererConfig applies the theme to base.
func (c *SiteConfig) RendererConfig(base renderer.Config) renderer.Config {
	if c == nil {
		return base
	}
	if s, err := c.Scheme(c.Theme.Default); err == nil && c.Theme.Default != "" {
		base.DefaultScheme = s
	}
	if s, err := c.Scheme(c.Theme.Article); err == nil && c.Theme.Article != "" {
		base.ArticleScheme = s
	}
	return base
}
