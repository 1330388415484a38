// Package config assembles the service configuration from environment
// variables and the optional site YAML file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	envcfg "blog-og/pkg/config"
)

// Render timeout bounds accepted from OG_RENDER_TIMEOUT.
const (
	DefaultRenderTimeout = 3 * time.Second
	MinRenderTimeout     = 100 * time.Millisecond
	MaxRenderTimeout     = 10 * time.Second
)

// OGConfig holds the runtime configuration of the OG image service.
type OGConfig struct {
	// Environment is APP_ENV (or GO_ENV). "production" enables ETag revalidation.
	Environment string

	// Port is the HTTP listen port. Default: 8080
	Port int

	// BaseURL is the public site URL. Default: http://localhost:3000
	BaseURL string

	// LogoPath is a local logo file. Takes precedence over LogoURL.
	LogoPath string

	// LogoURL is fetched at startup. Default: BaseURL + "/logo.png" when
	// LogoPath is empty.
	LogoURL string

	// RenderTimeout bounds a single primary render. Default: 3s, range 100ms-10s.
	RenderTimeout time.Duration

	// RequestTimeout bounds a whole HTTP request. It is raised to at least
	// twice RenderTimeout so the fallback always has room. Default: 10s
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration

	// LogLevel is LOG_LEVEL (debug, info, warn, error). Default: info
	LogLevel string

	// SiteConfigPath is an optional YAML file with display defaults and colours.
	SiteConfigPath string

	// TraceSampleRatio is the fraction of requests traced. Default: 1.0
	TraceSampleRatio float64

	// OTLPEndpoint is the OTLP/HTTP collector for spans. Empty disables export.
	OTLPEndpoint string
}

// IsProduction reports whether the service runs in production mode.
func (c *OGConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Addr returns the listen address.
func (c *OGConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadOGConfig reads the service configuration from the environment.
// Out-of-range durations fall back to their defaults with a warning; a
// malformed base URL or port is an error.
func LoadOGConfig() (*OGConfig, error) {
	env := envcfg.GetEnvString("APP_ENV", envcfg.GetEnvString("GO_ENV", "development"))

	cfg := &OGConfig{
		Environment:      env,
		Port:             envcfg.GetEnvInt("PORT", 8080),
		BaseURL:          strings.TrimRight(envcfg.GetEnvString("OG_BASE_URL", "http://localhost:3000"), "/"),
		LogoPath:         envcfg.GetEnvString("OG_LOGO_PATH", ""),
		LogoURL:          envcfg.GetEnvString("OG_LOGO_URL", ""),
		RenderTimeout:    envcfg.GetEnvDuration("OG_RENDER_TIMEOUT", DefaultRenderTimeout),
		RequestTimeout:   envcfg.GetEnvDuration("OG_REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout:  envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:         envcfg.GetEnvString("LOG_LEVEL", "info"),
		SiteConfigPath:   envcfg.GetEnvString("OG_SITE_CONFIG", ""),
		TraceSampleRatio: envcfg.GetEnvFloat("OTEL_TRACES_SAMPLER_RATIO", 1.0),
		OTLPEndpoint:     envcfg.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("OG_BASE_URL must be an absolute http(s) URL, got %q", cfg.BaseURL)
	}

	if cfg.LogoPath == "" && cfg.LogoURL == "" {
		cfg.LogoURL = cfg.BaseURL + "/logo.png"
	}

	var fallbacks fallbackRecorder
	defer fallbacks.finish()

	timeout, err := envcfg.DurationInRange(cfg.RenderTimeout, MinRenderTimeout, MaxRenderTimeout, DefaultRenderTimeout)
	if err != nil {
		slog.Warn("OG_RENDER_TIMEOUT out of range, using default",
			slog.Duration("value", cfg.RenderTimeout),
			slog.Duration("default", DefaultRenderTimeout),
			slog.Any("error", err))
		fallbacks.record("render_timeout")
	}
	cfg.RenderTimeout = timeout

	if err := envcfg.ValidatePositiveDuration(cfg.ShutdownTimeout); err != nil {
		slog.Warn("SHUTDOWN_TIMEOUT invalid, using default", slog.Any("error", err))
		cfg.ShutdownTimeout = 10 * time.Second
		fallbacks.record("shutdown_timeout")
	}

	if floor := 2 * cfg.RenderTimeout; cfg.RequestTimeout < floor {
		cfg.RequestTimeout = floor
	}

	if cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		slog.Warn("OTEL_TRACES_SAMPLER_RATIO out of range, using 1.0",
			slog.Float64("value", cfg.TraceSampleRatio))
		cfg.TraceSampleRatio = 1.0
		fallbacks.record("trace_sample_ratio")
	}

	return cfg, nil
}
