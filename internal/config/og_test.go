package config

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearOGEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "GO_ENV", "PORT", "OG_BASE_URL", "OG_LOGO_PATH", "OG_LOGO_URL",
		"OG_RENDER_TIMEOUT", "OG_REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL",
		"OG_SITE_CONFIG", "OTEL_TRACES_SAMPLER_RATIO", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadOGConfig_Defaults(t *testing.T) {
	clearOGEnv(t)

	cfg, err := LoadOGConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "http://localhost:3000/logo.png", cfg.LogoURL)
	assert.Equal(t, 3*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 1.0, cfg.TraceSampleRatio, 1e-9)
}

func TestLoadOGConfig_Environment(t *testing.T) {
	tests := []struct {
		name     string
		appEnv   string
		goEnv    string
		wantProd bool
	}{
		{name: "APP_ENV production", appEnv: "production", wantProd: true},
		{name: "GO_ENV production", goEnv: "production", wantProd: true},
		{name: "APP_ENV wins", appEnv: "staging", goEnv: "production", wantProd: false},
		{name: "case insensitive", appEnv: "Production", wantProd: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOGEnv(t)
			t.Setenv("APP_ENV", tt.appEnv)
			t.Setenv("GO_ENV", tt.goEnv)

			cfg, err := LoadOGConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantProd, cfg.IsProduction())
		})
	}
}

func TestLoadOGConfig_RenderTimeout(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"500ms", 500 * time.Millisecond},
		{"100ms", 100 * time.Millisecond},
		{"10s", 10 * time.Second},
		{"50ms", DefaultRenderTimeout},
		{"1m", DefaultRenderTimeout},
		{"soon", DefaultRenderTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearOGEnv(t)
			t.Setenv("OG_RENDER_TIMEOUT", tt.value)

			cfg, err := LoadOGConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.RenderTimeout)
			assert.GreaterOrEqual(t, cfg.RequestTimeout, 2*cfg.RenderTimeout)
		})
	}
}

func TestLoadOGConfig_Logo(t *testing.T) {
	clearOGEnv(t)
	t.Setenv("OG_LOGO_PATH", "/srv/logo.png")

	cfg, err := LoadOGConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/logo.png", cfg.LogoPath)
	assert.Empty(t, cfg.LogoURL)

	clearOGEnv(t)
	t.Setenv("OG_BASE_URL", "https://example.com/")
	cfg, err = LoadOGConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "https://example.com/logo.png", cfg.LogoURL)
}

func TestLoadOGConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "relative base url", key: "OG_BASE_URL", value: "example.com"},
		{name: "unsupported scheme", key: "OG_BASE_URL", value: "ftp://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOGEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadOGConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadOGConfig_SampleRatio(t *testing.T) {
	clearOGEnv(t)
	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "0.1")
	cfg, err := LoadOGConfig()
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.TraceSampleRatio, 1e-9)

	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "7")
	cfg, err = LoadOGConfig()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cfg.TraceSampleRatio, 1e-9)
}

func TestLoadOGConfig_FallbackMetrics(t *testing.T) {
	clearOGEnv(t)
	before := testutil.ToFloat64(ConfigFallbacksTotal.WithLabelValues("render_timeout"))

	t.Setenv("OG_RENDER_TIMEOUT", "50ms")
	_, err := LoadOGConfig()
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(ConfigFallbacksTotal.WithLabelValues("render_timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ConfigFallbackActive))
	assert.Positive(t, testutil.ToFloat64(ConfigLoadTimestamp))

	clearOGEnv(t)
	_, err = LoadOGConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(ConfigFallbackActive))
}
