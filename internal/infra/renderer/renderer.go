// Package renderer draws the 1200x630 Open Graph PNGs.
//
// Two templates exist. The default template is the logo centred on a plain
// background; it does not depend on the request, so it is drawn once by New
// and shared. The article template places the logo above a dark banner that
// carries the page title and is drawn for every request.
//
// Drawing uses the github.com/gogpu/gg software rasterizer. A Renderer is safe
// for concurrent use: each render owns its own canvas and the shared default
// image is never mutated after New returns.
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"blog-og/internal/domain/entity"
	"blog-og/internal/observability/tracing"
)

// Image is an encoded PNG. It must be treated as read-only.
type Image struct {
	Variant entity.Variant
	Width   int
	Height  int
	PNG     []byte
}

// Renderer produces OG images.
type Renderer struct {
	cfg   Config
	logo  *gg.ImageBuf
	logoW float64
	logoH float64
	font  *text.FontSource

	defaultImage *Image
	defaultErr   error
}

// New loads the title font and pre-renders the default image. A nil logo
// produces templates without a logo. Only an invalid Config or unusable font
// data fail New; a failed default pre-render is kept and reported by Default.
func New(cfg Config, logo image.Image) (*Renderer, error) {
	if len(cfg.FontData) == 0 {
		cfg.FontData = DefaultConfig().FontData
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid renderer config: %w", err)
	}

	font, err := text.NewFontSource(cfg.FontData)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}

	r := &Renderer{cfg: cfg, font: font}
	if logo != nil && !logo.Bounds().Empty() {
		r.logo = gg.ImageBufFromImage(logo)
		r.logoW = float64(logo.Bounds().Dx())
		r.logoH = float64(logo.Bounds().Dy())
	}

	img, err := r.renderDefault()
	if err != nil {
		r.defaultErr = fmt.Errorf("%w: %w", ErrDefaultUnavailable, err)
	} else {
		r.defaultImage = img
	}
	return r, nil
}

// Default returns the shared pre-rendered default image.
func (r *Renderer) Default() (*Image, error) {
	if r.defaultErr != nil {
		return nil, r.defaultErr
	}
	if r.defaultImage == nil {
		return nil, ErrDefaultUnavailable
	}
	return r.defaultImage, nil
}

// Render produces the image for variant. The default variant returns the
// shared image; title is only used by the article variant.
func (r *Renderer) Render(ctx context.Context, variant entity.Variant, title string) (*Image, error) {
	ctx, span := tracing.StartSpan(ctx, "renderer.Render",
		attribute.String("og.variant", variant.String()),
		attribute.Int("og.title_length", len([]rune(title))),
	)
	defer span.End()

	img, err := r.render(ctx, variant, title)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("og.png_bytes", len(img.PNG)))
	return img, nil
}

func (r *Renderer) render(ctx context.Context, variant entity.Variant, title string) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Variant: variant, Err: err}
	}

	switch variant {
	case entity.VariantDefault:
		img, err := r.Default()
		if err != nil {
			return nil, &RenderError{Variant: variant, Err: err}
		}
		return img, nil
	case entity.VariantArticle:
		img, err := r.renderArticle(ctx, title)
		if err != nil {
			return nil, &RenderError{Variant: variant, Err: err}
		}
		return img, nil
	default:
		return nil, &RenderError{Variant: variant, Err: fmt.Errorf("%w: %q", entity.ErrInvalidVariant, variant)}
	}
}

func (r *Renderer) renderDefault() (*Image, error) {
	dc := gg.NewContext(entity.ImageWidth, entity.ImageHeight)
	defer func() {
		_ = dc.Close()
	}()

	scheme := r.cfg.DefaultScheme
	dc.ClearWithColor(gg.Hex(scheme.Background))

	if r.logo != nil {
		w, h := fitWithin(r.logoW, r.logoH,
			entity.ImageWidth*defaultLogoFit, entity.ImageHeight*defaultLogoFit)
		r.drawLogo(dc,
			(entity.ImageWidth-w)/2+defaultNudgeX,
			(entity.ImageHeight-h)/2+defaultNudgeY,
			w, h)
	}

	return encode(dc, entity.VariantDefault)
}

func (r *Renderer) renderArticle(ctx context.Context, title string) (*Image, error) {
	dc := gg.NewContext(entity.ImageWidth, entity.ImageHeight)
	defer func() {
		_ = dc.Close()
	}()

	scheme := r.cfg.ArticleScheme
	dc.ClearWithColor(gg.Hex(scheme.Background))

	if r.logo != nil {
		w, h := fitWithin(r.logoW, r.logoH, entity.ImageWidth-2*logoMargin, logoHeight)
		r.drawLogo(dc, logoMargin+logoNudgeX, logoMargin+logoNudgeY, w, h)
	}

	bannerHeight := float64(entity.ImageHeight - bannerTop)
	dc.SetHexColor(scheme.Foreground)
	dc.DrawRectangle(0, bannerTop, entity.ImageWidth, bannerHeight)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill banner: %w", err)
	}

	dc.SetHexColor(scheme.Accent)
	dc.DrawRectangle(0, bannerTop, entity.ImageWidth, accentRule)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill accent rule: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	face := r.font.Face(r.cfg.TitleFontSize)
	lines := wrapTitle(title, face, entity.ImageWidth-2*bannerPadX, r.cfg.TitleMaxLines)
	if len(lines) > 0 {
		m := face.Metrics()
		lineHeight := r.cfg.TitleFontSize * titleLeading
		blockHeight := lineHeight * float64(len(lines))
		top := bannerTop + (bannerHeight-blockHeight)/2
		if top < bannerTop+bannerPadY/2 {
			top = bannerTop + bannerPadY/2
		}
		inset := (lineHeight - (m.Ascent + m.Descent)) / 2

		dc.SetFont(face)
		dc.SetHexColor(scheme.Background)
		for i, line := range lines {
			baseline := top + float64(i)*lineHeight + inset + m.Ascent
			dc.DrawString(line, bannerPadX, baseline)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return encode(dc, entity.VariantArticle)
}

func (r *Renderer) drawLogo(dc *gg.Context, x, y, w, h float64) {
	dc.DrawImageEx(r.logo, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func encode(dc *gg.Context, variant entity.Variant) (*Image, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return &Image{
		Variant: variant,
		Width:   dc.Width(),
		Height:  dc.Height(),
		PNG:     buf.Bytes(),
	}, nil
}
