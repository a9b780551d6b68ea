package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// loadFonts parses the render fonts once; faces are derived per size at draw
// time. Env paths override the embedded Go fonts so deployments can mount a
// brand typeface without rebuilding.
func loadFonts() (*fontSet, error) {
	regular, err := loadFont("RENDER_FONT_REGULAR", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := loadFont("RENDER_FONT_BOLD", gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

func loadFont(envKey string, fallback []byte) (*truetype.Font, error) {
	data := fallback
	if path := strings.TrimSpace(os.Getenv(envKey)); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		data = raw
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF for %s: %w", envKey, err)
	}
	return parsed, nil
}

func (fs *fontSet) regularFace(size float64) font.Face {
	return newFace(fs.regular, size)
}

func (fs *fontSet) boldFace(size float64) font.Face {
	return newFace(fs.bold, size)
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
