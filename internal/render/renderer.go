// Package render rasterizes slide descriptors into PNG-ready images. Every
// slide gets its own drawing context so slides stay independently
// rasterizable with no shared layout state.
package render

import (
	"context"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/platform/envutil"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
	"github.com/brainzones/strategy-studio-backend/internal/richtext"
)

// Format fixes the base canvas of an output asset. The renderer multiplies
// it by the configured upscale factor.
type Format struct {
	Name   string
	Width  int
	Height int
}

var (
	FormatPost  = Format{Name: "post", Width: 1080, Height: 1080}
	FormatStory = Format{Name: "story", Width: 1080, Height: 1920}
	FormatCard  = Format{Name: "card", Width: 1600, Height: 900}
)

type Config struct {
	// Scale is the fixed upscaling factor applied to every rasterization,
	// the counterpart of the browser pipeline's pixelRatio.
	Scale        float64
	FetchTimeout time.Duration
	BrandName    string
	BrandDomain  string
}

func ConfigFromEnv() Config {
	return Config{
		Scale:        envutil.Float("RENDER_SCALE", 2),
		FetchTimeout: time.Duration(envutil.Int("RENDER_FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		BrandName:    envutil.String("BRAND_NAME", "BrainZones"),
		BrandDomain:  envutil.String("BRAND_DOMAIN", "brainzones.org"),
	}
}

type Renderer struct {
	log        *logger.Logger
	fonts      *fontSet
	httpClient *http.Client
	cfg        Config
}

func New(log *logger.Logger, cfg Config) (*Renderer, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if strings.TrimSpace(cfg.BrandName) == "" {
		cfg.BrandName = "BrainZones"
	}
	if strings.TrimSpace(cfg.BrandDomain) == "" {
		cfg.BrandDomain = "brainzones.org"
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("could not load render fonts: %w", err)
	}
	return &Renderer{
		log:        log.With("service", "Renderer"),
		fonts:      fonts,
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		cfg:        cfg,
	}, nil
}

var (
	slate700 = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xFF}
	slate600 = color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xFF}
	ctaBlue  = color.NRGBA{R: 0x13, G: 0xA0, B: 0xE9, A: 0xFF}
)

// RenderSlide rasterizes one carousel slide. The call is synchronous and
// self-contained, including the fetch of any embedded remote image.
func (r *Renderer) RenderSlide(ctx context.Context, slide domain.SlideDescriptor, format Format) (image.Image, error) {
	w := int(float64(format.Width) * r.cfg.Scale)
	h := int(float64(format.Height) * r.cfg.Scale)
	dc := gg.NewContext(w, h)

	switch slide.Kind {
	case domain.SlideTitle:
		if err := r.drawBackdrop(ctx, dc, slide.Image, slide.Gradient, false); err != nil {
			return nil, err
		}
		r.drawKicker(dc, fmt.Sprintf("A %s Strategy", r.cfg.BrandName), 0.38)
		r.drawHeroHeading(dc, slide.Heading, 0.5)
	case domain.SlideHowTo:
		r.fillWhite(dc)
		y := r.drawSectionHeading(dc, richtext.StripTags(slide.Heading), accentColor(slide.Gradient), 0.26)
		r.drawParagraphs(dc, richtext.BlockTexts(slide.Body), y, gg.AlignCenter)
	case domain.SlideResearch:
		r.fillWhite(dc)
		y := r.drawSectionHeading(dc, richtext.StripTags(slide.Heading), accentColor(slide.Gradient), 0.2)
		items := richtext.ListItems(slide.Body)
		if len(items) == 0 {
			items = richtext.BlockTexts(slide.Body)
		}
		r.drawBullets(dc, items, y)
	case domain.SlideArticle:
		if err := r.drawBackdrop(ctx, dc, slide.Image, nil, true); err != nil {
			return nil, err
		}
		r.drawHeroHeading(dc, slide.Heading, 0.42)
		r.drawSubtitle(dc, slide.Subtitle, 0.56)
	case domain.SlideIntro:
		if err := r.drawBackdrop(ctx, dc, slide.Image, nil, true); err != nil {
			return nil, err
		}
		r.drawKicker(dc, strings.ToUpper(fmt.Sprintf("This week on %s", r.cfg.BrandName)), 0.4)
		r.drawHeroHeading(dc, slide.Heading, 0.5)
		r.drawFooter(dc)
	case domain.SlideStrategy:
		if err := r.drawBackdrop(ctx, dc, slide.Image, slide.Gradient, false); err != nil {
			return nil, err
		}
		r.drawHeroHeading(dc, slide.Heading, 0.44)
		r.drawSubtitle(dc, slide.Body, 0.58)
		r.drawFooter(dc)
	case domain.SlideCta:
		r.fillWhite(dc)
		r.drawCta(dc)
	default:
		return nil, fmt.Errorf("unknown slide kind %q", slide.Kind)
	}

	return dc.Image(), nil
}

// RenderStory rasterizes the single-strategy 9:16 story panel: title over
// the backdrop with the generated hook beneath it.
func (r *Renderer) RenderStory(ctx context.Context, s domain.Strategy, imageRef string, gradient domain.Gradient, hook string) (image.Image, error) {
	w := int(float64(FormatStory.Width) * r.cfg.Scale)
	h := int(float64(FormatStory.Height) * r.cfg.Scale)
	dc := gg.NewContext(w, h)

	if err := r.drawBackdrop(ctx, dc, imageRef, &gradient, false); err != nil {
		return nil, err
	}
	r.drawHeroHeading(dc, s.Title, 0.42)
	r.drawSubtitle(dc, hook, 0.54)
	r.drawFooter(dc)
	return dc.Image(), nil
}

// RenderCard rasterizes the landscape strategy card: title panel on the
// left, how-to steps and research bullets on the right.
func (r *Renderer) RenderCard(ctx context.Context, s domain.Strategy, imageRef string, gradient domain.Gradient) (image.Image, error) {
	w := int(float64(FormatCard.Width) * r.cfg.Scale)
	h := int(float64(FormatCard.Height) * r.cfg.Scale)
	dc := gg.NewContext(w, h)
	r.fillWhite(dc)

	panelW := int(float64(w) * 0.42)

	// Left panel: backdrop plus title, clipped to its own region.
	dc.Push()
	dc.DrawRectangle(0, 0, float64(panelW), float64(h))
	dc.Clip()
	panel := gg.NewContext(panelW, h)
	if err := r.drawBackdrop(ctx, panel, imageRef, &gradient, false); err != nil {
		return nil, err
	}
	dc.DrawImage(panel.Image(), 0, 0)
	titleSize := float64(w) * 0.028
	dc.SetFontFace(r.fonts.boldFace(titleSize))
	dc.SetColor(color.White)
	dc.DrawStringWrapped(s.Title, float64(panelW)/2, float64(h)*0.5, 0.5, 0.5, float64(panelW)*0.82, 1.3, gg.AlignCenter)
	dc.Pop()

	// Right panel: how-to steps, then research.
	margin := float64(w) * 0.04
	x := float64(panelW) + margin
	textW := float64(w) - x - margin
	y := float64(h) * 0.1

	y = r.drawTextBlock(dc, r.fonts.boldFace(float64(w)*0.016), parseAccent(gradient.AccentColor), "HOW TO", x, y, textW, gg.AlignLeft)
	y += float64(h) * 0.015
	for i, step := range slidesStepTexts(s.HowTo) {
		y = r.drawTextBlock(dc, r.fonts.boldFace(float64(w)*0.014), slate700, fmt.Sprintf("%d. %s", i+1, step.heading), x, y, textW, gg.AlignLeft)
		if step.body != "" {
			y = r.drawTextBlock(dc, r.fonts.regularFace(float64(w)*0.012), slate600, step.body, x, y, textW, gg.AlignLeft)
		}
		y += float64(h) * 0.012
	}

	if !richtext.IsBlank(s.Research) {
		y += float64(h) * 0.02
		y = r.drawTextBlock(dc, r.fonts.boldFace(float64(w)*0.016), parseAccent(gradient.AccentColor), "RESEARCH", x, y, textW, gg.AlignLeft)
		y += float64(h) * 0.015
		items := richtext.ListItems(s.Research)
		if len(items) == 0 {
			items = richtext.BlockTexts(s.Research)
		}
		for _, item := range items {
			y = r.drawTextBlock(dc, r.fonts.regularFace(float64(w)*0.012), slate600, "• "+item, x, y, textW, gg.AlignLeft)
			y += float64(h) * 0.008
		}
	}

	return dc.Image(), nil
}

type stepText struct {
	heading string
	body    string
}

func slidesStepTexts(howTo string) []stepText {
	var steps []stepText
	for _, block := range richtext.ParseBlocks(howTo) {
		if block.Heading {
			steps = append(steps, stepText{heading: richtext.StripTags(block.Outer)})
			continue
		}
		text := strings.TrimSpace(richtext.StripTags(block.Outer))
		if text == "" {
			continue
		}
		if len(steps) == 0 {
			steps = append(steps, stepText{})
		}
		last := &steps[len(steps)-1]
		if last.body != "" {
			last.body += " "
		}
		last.body += text
	}
	return steps
}

// ---- drawing helpers ----

func (r *Renderer) fillWhite(dc *gg.Context) {
	dc.SetColor(color.White)
	dc.Clear()
}

// drawBackdrop paints the slide background: white base, the remote image if
// one is referenced, then either the palette gradient wash or a flat dark
// overlay. A failed image fetch fails the slide.
func (r *Renderer) drawBackdrop(ctx context.Context, dc *gg.Context, imageRef string, gradient *domain.Gradient, darkOverlay bool) error {
	w, h := dc.Width(), dc.Height()
	if imageRef == "" && gradient == nil && !darkOverlay {
		r.fillWhite(dc)
		return nil
	}

	dc.SetColor(slate700)
	dc.Clear()

	if imageRef != "" {
		img, err := r.fetchImage(ctx, imageRef)
		if err != nil {
			return fmt.Errorf("could not rasterize slide background: %w", err)
		}
		dc.DrawImage(coverScale(img, w, h), 0, 0)
	}

	if gradient != nil {
		accent := parseAccent(gradient.AccentColor)
		wash := gg.NewLinearGradient(0, float64(h), 0, 0)
		wash.AddColorStop(0, color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 0xB3})
		wash.AddColorStop(0.5, color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 0x66})
		wash.AddColorStop(1, color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 0x00})
		dc.SetFillStyle(wash)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	} else if darkOverlay {
		dc.SetColor(color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0x99})
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}
	return nil
}

func (r *Renderer) drawKicker(dc *gg.Context, text string, yFrac float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFontFace(r.fonts.regularFace(w * 0.024))
	dc.SetColor(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC})
	dc.DrawStringAnchored(text, w/2, h*yFrac, 0.5, 0.5)
}

func (r *Renderer) drawHeroHeading(dc *gg.Context, text string, yFrac float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFontFace(r.fonts.boldFace(w * 0.052))
	dc.SetColor(color.White)
	dc.DrawStringWrapped(richtext.StripTags(text), w/2, h*yFrac, 0.5, 0.5, w*0.84, 1.2, gg.AlignCenter)
}

func (r *Renderer) drawSubtitle(dc *gg.Context, text string, yFrac float64) {
	if strings.TrimSpace(text) == "" {
		return
	}
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFontFace(r.fonts.regularFace(w * 0.028))
	dc.SetColor(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE6})
	dc.DrawStringWrapped(richtext.StripTags(text), w/2, h*yFrac, 0.5, 0, w*0.8, 1.35, gg.AlignCenter)
}

func (r *Renderer) drawFooter(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFontFace(r.fonts.regularFace(w * 0.02))
	dc.SetColor(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xCC})
	dc.DrawStringAnchored("A new strategy from", w/2, h*0.93, 0.5, 0.5)
	dc.SetFontFace(r.fonts.boldFace(w * 0.028))
	dc.SetColor(color.White)
	dc.DrawStringAnchored(r.cfg.BrandName, w/2, h*0.958, 0.5, 0.5)
}

// drawSectionHeading centers the heading and returns the y where body
// content should start.
func (r *Renderer) drawSectionHeading(dc *gg.Context, text string, accent color.NRGBA, yFrac float64) float64 {
	w, h := float64(dc.Width()), float64(dc.Height())
	size := w * 0.042
	dc.SetFontFace(r.fonts.boldFace(size))
	dc.SetColor(accent)
	dc.DrawStringWrapped(text, w/2, h*yFrac, 0.5, 0.5, w*0.84, 1.2, gg.AlignCenter)
	return h*yFrac + size*2
}

func (r *Renderer) drawParagraphs(dc *gg.Context, paragraphs []string, y float64, align gg.Align) {
	w := float64(dc.Width())
	x := w / 2
	textW := w * 0.76
	if align == gg.AlignLeft {
		x = w * 0.12
	}
	for _, p := range paragraphs {
		y = r.drawWrappedAt(dc, r.fonts.regularFace(w*0.026), slate600, p, x, y, textW, align)
		y += w * 0.02
	}
}

func (r *Renderer) drawBullets(dc *gg.Context, items []string, y float64) {
	w := float64(dc.Width())
	x := w * 0.12
	textW := w * 0.76
	for _, item := range items {
		y = r.drawWrappedAt(dc, r.fonts.regularFace(w*0.024), slate600, "• "+item, x, y, textW, gg.AlignLeft)
		y += w * 0.016
	}
}

func (r *Renderer) drawCta(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetFontFace(r.fonts.boldFace(w * 0.03))
	dc.SetColor(slate700)
	dc.DrawStringAnchored("Find more strategies at", w/2, h*0.46, 0.5, 0.5)
	dc.SetFontFace(r.fonts.boldFace(w * 0.05))
	dc.SetColor(ctaBlue)
	dc.DrawStringAnchored(r.cfg.BrandDomain, w/2, h*0.54, 0.5, 0.5)
}

// drawTextBlock draws top-anchored wrapped text and returns the y just below
// it, so callers can stack blocks.
func (r *Renderer) drawTextBlock(dc *gg.Context, face font.Face, col color.NRGBA, text string, x, y, width float64, align gg.Align) float64 {
	return r.drawWrappedAt(dc, face, col, text, x, y, width, align)
}

func (r *Renderer) drawWrappedAt(dc *gg.Context, face font.Face, col color.NRGBA, text string, x, y, width float64, align gg.Align) float64 {
	const lineSpacing = 1.35
	dc.SetFontFace(face)
	dc.SetColor(col)
	ax := 0.0
	if align == gg.AlignCenter {
		ax = 0.5
	}
	lines := dc.WordWrap(text, width)
	dc.DrawStringWrapped(text, x, y, ax, 0, width, lineSpacing, align)
	return y + float64(len(lines))*dc.FontHeight()*lineSpacing
}

func parseAccent(hexStr string) color.NRGBA {
	s := strings.TrimSpace(hexStr)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ctaBlue
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		return ctaBlue
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xFF}
}

func accentColor(g *domain.Gradient) color.NRGBA {
	if g == nil {
		return ctaBlue
	}
	return parseAccent(g.AccentColor)
}
