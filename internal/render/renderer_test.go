package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/platform/logger"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	r, err := New(log, Config{Scale: 0.25})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderSlideDimensions(t *testing.T) {
	r := newRenderer(t)
	slide := domain.SlideDescriptor{Kind: domain.SlideCta}

	img, err := r.RenderSlide(context.Background(), slide, FormatPost)
	if err != nil {
		t.Fatalf("RenderSlide: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 270 || b.Dy() != 270 {
		t.Fatalf("post canvas = %dx%d, want 270x270 at 0.25 scale", b.Dx(), b.Dy())
	}

	img, err = r.RenderSlide(context.Background(), slide, FormatStory)
	if err != nil {
		t.Fatalf("RenderSlide story: %v", err)
	}
	b = img.Bounds()
	if b.Dx() != 270 || b.Dy() != 480 {
		t.Fatalf("story canvas = %dx%d, want 270x480", b.Dx(), b.Dy())
	}
}

func TestRenderSlideByKind(t *testing.T) {
	r := newRenderer(t)
	gradient := domain.LookupGradient("")

	slides := []domain.SlideDescriptor{
		{Kind: domain.SlideTitle, Heading: "Brain Break", Gradient: &gradient},
		{Kind: domain.SlideHowTo, Heading: "<h3>Step 1</h3>", Body: "<p>Pause everything for one minute.</p>", Gradient: &gradient},
		{Kind: domain.SlideResearch, Heading: "🔬 Research", Body: "<li>Short breaks restore <strong>attention</strong>.</li>", Gradient: &gradient},
		{Kind: domain.SlideCta},
	}
	for _, slide := range slides {
		if _, err := r.RenderSlide(context.Background(), slide, FormatPost); err != nil {
			t.Fatalf("RenderSlide(%s): %v", slide.Kind, err)
		}
	}
}

func TestRenderSlideUnknownKind(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.RenderSlide(context.Background(), domain.SlideDescriptor{Kind: "mystery"}, FormatPost); err == nil {
		t.Fatal("expected error for unknown slide kind")
	}
}

func TestRenderCardAndStory(t *testing.T) {
	r := newRenderer(t)
	s := domain.Strategy{
		Title:    "Mindful Morning Check-In",
		HowTo:    "<h3>Greet</h3><p>Stand at the door.</p>",
		Research: "<li>Connection lowers <strong>cortisol</strong>.</li>",
	}
	gradient := domain.LookupGradient("Orange")

	card, err := r.RenderCard(context.Background(), s, "", gradient)
	if err != nil {
		t.Fatalf("RenderCard: %v", err)
	}
	if b := card.Bounds(); b.Dx() != 400 || b.Dy() != 225 {
		t.Fatalf("card canvas = %dx%d, want 400x225", b.Dx(), b.Dy())
	}

	story, err := r.RenderStory(context.Background(), s, "", gradient, "A hook sentence.")
	if err != nil {
		t.Fatalf("RenderStory: %v", err)
	}
	if b := story.Bounds(); b.Dx() != 270 || b.Dy() != 480 {
		t.Fatalf("story canvas = %dx%d, want 270x480", b.Dx(), b.Dy())
	}
}

func TestParseAccent(t *testing.T) {
	got := parseAccent("#FF8040")
	want := color.NRGBA{R: 0xFF, G: 0x80, B: 0x40, A: 0xFF}
	if got != want {
		t.Fatalf("parseAccent = %+v, want %+v", got, want)
	}
	if parseAccent("") != ctaBlue {
		t.Fatal("blank accent should fall back to the default blue")
	}
	if parseAccent("nothex") != ctaBlue {
		t.Fatal("invalid accent should fall back to the default blue")
	}
}

func TestCoverScaleFillsCanvas(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	out := coverScale(src, 100, 100)
	if b := out.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("cover output = %dx%d, want 100x100", b.Dx(), b.Dy())
	}

	tall := image.NewRGBA(image.Rect(0, 0, 50, 400))
	out = coverScale(tall, 120, 60)
	if b := out.Bounds(); b.Dx() != 120 || b.Dy() != 60 {
		t.Fatalf("cover output = %dx%d, want 120x60", b.Dx(), b.Dy())
	}
}

func TestStepTextsGrouping(t *testing.T) {
	steps := slidesStepTexts("<h3>One</h3><p>First body.</p><p>More.</p><h3>Two</h3><p>Second body.</p>")
	if len(steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(steps))
	}
	if steps[0].heading != "One" || steps[0].body != "First body. More." {
		t.Fatalf("step 0 = %+v", steps[0])
	}
	if steps[1].heading != "Two" || steps[1].body != "Second body." {
		t.Fatalf("step 1 = %+v", steps[1])
	}
}
