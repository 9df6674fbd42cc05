package img2ascii

import (
	"image/color"
	"strconv"

	"github.com/wbrown/img2ascii/imageutil"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Brightness returns the perceptual brightness of the color in [0, 1]
// using BT.601 luma weights.
func (c RGB) Brightness() float64 {
	return imageutil.Luminance(c.R, c.G, c.B) / 255.0
}

func (c RGB) toColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// appendFG appends the 24-bit foreground escape for c.
func (c RGB) appendFG(dst []byte) []byte {
	return c.appendSGR(append(dst, ESC+"[38;2;"...))
}

// appendBG appends the 24-bit background escape for c.
func (c RGB) appendBG(dst []byte) []byte {
	return c.appendSGR(append(dst, ESC+"[48;2;"...))
}

func (c RGB) appendSGR(dst []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm')
}
