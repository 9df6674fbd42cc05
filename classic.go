package img2ascii

import "unicode/utf8"

// ClassicRenderer draws one glyph per pixel, chosen from a brightness
// ramp. In color mode each glyph carries its pixel's color as a
// foreground escape.
type ClassicRenderer struct {
	Ramp    Ramp
	NoColor bool
}

func (r *ClassicRenderer) Render(grid *PixelGrid) string {
	ramp := r.Ramp
	if len(ramp) == 0 {
		ramp = Ramp(StandardRamp)
	}

	perCell := 4
	if !r.NoColor {
		perCell = 24
	}
	buf := make([]byte, 0, grid.Width*grid.Height*perCell+grid.Height*8)

	if !r.NoColor {
		buf = append(buf, Reset...)
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := grid.At(x, y)
			if !r.NoColor {
				buf = c.appendFG(buf)
			}
			buf = utf8.AppendRune(buf, ramp.Glyph(c.Brightness()))
		}
		if !r.NoColor {
			buf = append(buf, Reset...)
		}
		if y < grid.Height-1 {
			buf = append(buf, '\n')
		}
	}
	if !r.NoColor {
		buf = append(buf, Reset...)
	}
	return string(buf)
}
