package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// PixelGrid is a resized image held as row-major RGBA bytes, four per
// pixel. It is produced once per render and read by the renderers.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelGrid allocates a black, opaque grid.
func NewPixelGrid(width, height int) *PixelGrid {
	g := &PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
	for i := 3; i < len(g.Pix); i += 4 {
		g.Pix[i] = 0xff
	}
	return g
}

// PixelGridFromImage copies img into a tightly packed grid.
func PixelGridFromImage(img image.Image) *PixelGrid {
	rgba := imageutil.RGBAImageFromImage(img)
	w, h := rgba.Width(), rgba.Height()
	g := &PixelGrid{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	for y := 0; y < h; y++ {
		src := rgba.Pix[rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+y):]
		copy(g.Pix[y*w*4:(y+1)*w*4], src[:w*4])
	}
	return g
}

// At returns the color at (x, y). Alpha is ignored.
func (g *PixelGrid) At(x, y int) RGB {
	i := (y*g.Width + x) * 4
	return RGB{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2]}
}

// Set writes an opaque color at (x, y).
func (g *PixelGrid) Set(x, y int, c RGB) {
	i := (y*g.Width + x) * 4
	g.Pix[i], g.Pix[i+1], g.Pix[i+2], g.Pix[i+3] = c.R, c.G, c.B, 0xff
}
