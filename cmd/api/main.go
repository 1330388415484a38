package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"blog-og/internal/config"
	hhttp "blog-og/internal/handler/http"
	"blog-og/internal/handler/http/og"
	"blog-og/internal/handler/http/requestid"
	"blog-og/internal/infra/logo"
	"blog-og/internal/infra/renderer"
	"blog-og/internal/observability/logging"
	"blog-og/internal/observability/tracing"
	"blog-og/internal/usecase/ogimage"
)

const serviceName = "blog-og"

func main() {
	cfg, err := config.LoadOGConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)
	version := getVersion()

	shutdownTracing, err := tracing.InitProvider(context.Background(), tracing.ProviderConfig{
		ServiceName:  serviceName,
		Version:      version,
		SampleRatio:  cfg.TraceSampleRatio,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, cfg, version)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runServer(logger, cfg, handler, version); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger initializes the process-wide structured logger.
func initLogger(cfg *config.OGConfig) *slog.Logger {
	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), true)
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer builds the renderer, the OG service and the HTTP handler chain.
// The default image is rendered here, before the listener opens.
func setupServer(logger *slog.Logger, cfg *config.OGConfig, version string) (http.Handler, error) {
	var site *config.SiteConfig
	if cfg.SiteConfigPath != "" {
		s, err := config.LoadSiteConfig(cfg.SiteConfigPath)
		if err != nil {
			return nil, err
		}
		site = s
		logger.Info("site config loaded", slog.String("path", cfg.SiteConfigPath))
	}

	logoCfg := logo.DefaultConfig()
	logoCfg.Path = cfg.LogoPath
	logoCfg.URL = cfg.LogoURL
	if site != nil && site.Site.Initials != "" {
		logoCfg.Initials = site.Site.Initials
	}

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	lg := logo.NewLoader(logoCfg, logger).Load(loadCtx)
	logger.Info("logo resolved", slog.String("source", string(lg.Source)))

	rcfg := site.RendererConfig(renderer.DefaultConfig())
	r, err := renderer.New(rcfg, lg.Image)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if _, err := r.Default(); err != nil {
		// Served anyway; article renders still work and /health reports it.
		logger.Error("default image unavailable", slog.Any("error", err))
	}

	policies := ogimage.DefaultPolicies()
	if site != nil {
		policies = policies.WithDefaults(site.Site.Title, site.Site.Description, site.Site.Author)
	}

	svc := &ogimage.Service{
		Renderer: r,
		Timeout:  cfg.RenderTimeout,
		Policies: &policies,
		Logger:   logger,
	}

	mux := http.NewServeMux()
	og.Register(mux, svc, cfg.IsProduction(), logger)
	hhttp.RegisterProbes(mux, &hhttp.HealthHandler{
		Renderer:   r,
		LogoSource: string(lg.Source),
		Version:    version,
	})

	// Metrics and Logging sit directly around the mux so they observe the
	// matched route pattern.
	return hhttp.Chain(mux,
		hhttp.Recover(logger),
		requestid.Middleware,
		hhttp.Timeout(cfg.RequestTimeout),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
		hhttp.Logging(logger),
	), nil
}

// runServer serves until SIGINT/SIGTERM, then shuts down gracefully.
func runServer(logger *slog.Logger, cfg *config.OGConfig, handler http.Handler, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version),
			slog.String("environment", cfg.Environment),
			slog.Duration("render_timeout", cfg.RenderTimeout))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
