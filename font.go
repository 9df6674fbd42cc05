package img2ascii

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the point size used for TrueType faces at 72 DPI.
const DefaultFontSize = 12.0

// LoadFontFace returns the face used to rasterize artifacts, along with
// its character cell size in pixels. An empty path selects the built-in
// 7x13 bitmap face.
func LoadFontFace(path string, size float64) (face font.Face, cellWidth, cellHeight int, err error) {
	if path == "" {
		face = basicfont.Face7x13
		return face, basicfont.Face7x13.Advance, basicfont.Face7x13.Height, nil
	}

	ttf, err := loadFont(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: failed to load font %s: %v",
			ErrInvalidConfiguration, path, err)
	}
	face = truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = fixed.I(int(size * 0.6))
	}
	cellWidth = max(1, advance.Ceil())
	cellHeight = max(1, face.Metrics().Height.Ceil())
	return face, cellWidth, cellHeight, nil
}

// loadFont loads a TrueType font from file
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return freetype.ParseFont(fontBytes)
}
