package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-og/internal/infra/renderer"
)

func writeSite(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSiteConfig(t *testing.T) {
	path := writeSite(t, `
site:
  title: Notes from the Studio
  description: Sketches and systems.
  author: Jane Doe
  initials: JD
theme:
  default: dark
  article: brand
  schemes:
    brand:
      background: "#0B0B0F"
      foreground: "#FAFAFA"
      border: "#222222"
      muted: "#999999"
      accent: "#FF5A36"
`)

	cfg, err := LoadSiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Notes from the Studio", cfg.Site.Title)
	assert.Equal(t, "JD", cfg.Site.Initials)

	rc := cfg.RendererConfig(renderer.DefaultConfig())
	assert.Equal(t, renderer.SchemeDark, rc.DefaultScheme)
	assert.Equal(t, "#FF5A36", rc.ArticleScheme.Accent)
	assert.Equal(t, 88.0, rc.TitleFontSize)
}

func TestLoadSiteConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed yaml", body: "site: [unterminated"},
		{name: "unknown scheme", body: "theme:\n  default: sepia\n"},
		{name: "bad colour", body: "theme:\n  schemes:\n    x:\n      background: white\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSiteConfig(writeSite(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSiteConfig_RendererConfigNil(t *testing.T) {
	var cfg *SiteConfig
	base := renderer.DefaultConfig()
	assert.Equal(t, base.DefaultScheme, cfg.RendererConfig(base).DefaultScheme)
}
