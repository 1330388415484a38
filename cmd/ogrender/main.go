// Package main renders one OG image to a file using the same pipeline as the
// HTTP service.
// Usage: ogrender [--type article] [--out og.png] [--output json] "title"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"blog-og/internal/config"
	"blog-og/internal/domain/entity"
	"blog-og/internal/infra/logo"
	"blog-og/internal/infra/renderer"
	"blog-og/internal/observability/logging"
	"blog-og/internal/usecase/ogimage"
	"blog-og/pkg/ogurl"
)

// RenderOutput is the JSON output format.
type RenderOutput struct {
	File       string      `json:"file"`
	Variant    string      `json:"variant"`
	Bytes      int         `json:"bytes"`
	Fallback   bool        `json:"fallback"`
	DurationMS int64       `json:"duration_ms"`
	ImageURL   string      `json:"image_url"`
	Tags       []ogurl.Tag `json:"tags"`
}

func main() {
	var (
		variant      string
		description  string
		author       string
		out          string
		logoPath     string
		logoURL      string
		sitePath     string
		baseURL      string
		timeout      time.Duration
		outputFormat string
	)

	flag.StringVar(&variant, "type", "article", "Template: article or default")
	flag.StringVar(&description, "description", "", "Description")
	flag.StringVar(&author, "author", "", "Author")
	flag.StringVar(&out, "out", "og.png", "Output PNG file")
	flag.StringVar(&logoPath, "logo", "", "Logo image file (PNG, JPEG or WebP)")
	flag.StringVar(&logoURL, "logo-url", "", "Logo image URL")
	flag.StringVar(&sitePath, "site", "", "Site YAML file")
	flag.StringVar(&baseURL, "base-url", "http://localhost:3000", "Public site URL used for the printed image URL")
	flag.DurationVar(&timeout, "timeout", ogimage.DefaultTimeout, "Render timeout")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	title := ""
	if args := flag.Args(); len(args) > 0 {
		title = args[0]
	}

	logger := initLogger()

	if err := run(logger, options{
		title:       title,
		variant:     variant,
		description: description,
		author:      author,
		out:         out,
		logoPath:    logoPath,
		logoURL:     logoURL,
		sitePath:    sitePath,
		baseURL:     baseURL,
		timeout:     timeout,
		json:        outputFormat == "json",
	}); err != nil {
		logger.Error("render failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	title       string
	variant     string
	description string
	author      string
	out         string
	logoPath    string
	logoURL     string
	sitePath    string
	baseURL     string
	timeout     time.Duration
	json        bool
}

func run(logger *slog.Logger, opts options) error {
	var site *config.SiteConfig
	if opts.sitePath != "" {
		s, err := config.LoadSiteConfig(opts.sitePath)
		if err != nil {
			return err
		}
		site = s
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logoCfg := logo.DefaultConfig()
	logoCfg.Path = opts.logoPath
	logoCfg.URL = opts.logoURL
	if site != nil && site.Site.Initials != "" {
		logoCfg.Initials = site.Site.Initials
	}
	lg := logo.NewLoader(logoCfg, logger).Load(ctx)

	r, err := renderer.New(site.RendererConfig(renderer.DefaultConfig()), lg.Image)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	policies := ogimage.DefaultPolicies()
	if site != nil {
		policies = policies.WithDefaults(site.Site.Title, site.Site.Description, site.Site.Author)
	}
	svc := &ogimage.Service{Renderer: r, Timeout: opts.timeout, Policies: &policies, Logger: logger}

	q := url.Values{}
	q.Set(entity.ParamType, opts.variant)
	if opts.title != "" {
		q.Set(entity.ParamTitle, opts.title)
	}
	if opts.description != "" {
		q.Set(entity.ParamDescription, opts.description)
	}
	if opts.author != "" {
		q.Set(entity.ParamAuthor, opts.author)
	}

	res, err := svc.Generate(ctx, q)
	if err != nil {
		return err
	}

	// #nosec G306 -- output is a public image
	if err := os.WriteFile(opts.out, res.Image.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	imageURL, err := ogurl.BuildURL(opts.baseURL, ogurl.Params{
		Title:       opts.title,
		Description: opts.description,
		Type:        opts.variant,
		Author:      opts.author,
	})
	if err != nil {
		return err
	}

	if opts.json {
		return outputJSON(opts, res, imageURL)
	}
	outputText(opts, res, imageURL)
	return nil
}

// outputText prints the result in human-readable format.
func outputText(opts options, res ogimage.Result, imageURL string) {
	fmt.Printf("Wrote %s (%s, %d bytes) in %dms\n", opts.out, res.Image.Variant, len(res.Image.PNG), res.Duration.Milliseconds())
	if res.Fallback {
		fmt.Println("Note: primary render failed, the default image was written")
	}
	fmt.Printf("Image URL: %s\n", imageURL)
}

// outputJSON prints the result and the page meta tags in JSON format.
func outputJSON(opts options, res ogimage.Result, imageURL string) error {
	md, err := ogurl.NewMetadata(opts.baseURL, page(opts))
	if err != nil {
		return err
	}

	output := RenderOutput{
		File:       opts.out,
		Variant:    res.Image.Variant.String(),
		Bytes:      len(res.Image.PNG),
		Fallback:   res.Fallback,
		DurationMS: res.Duration.Milliseconds(),
		ImageURL:   imageURL,
		Tags:       md.Tags(),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func page(opts options) ogurl.Page {
	p := ogurl.Page{Title: opts.title, Description: opts.description}
	if opts.variant == entity.VariantArticle.String() {
		p.Article = &ogurl.Article{Title: opts.title}
		if opts.author != "" {
			p.Article.Authors = []string{opts.author}
		}
	}
	return p
}

// initLogger logs to stderr so stdout stays machine-readable.
func initLogger() *slog.Logger {
	logger := logging.New(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")), true)
	slog.SetDefault(logger)
	return logger
}
