package img2ascii

import "unicode/utf8"

const (
	upperHalfBlock = '▀'
	lowerHalfBlock = '▄'
	fullBlock      = '█'
)

// halfBlockThreshold splits light from dark pixels in no-color mode.
const halfBlockThreshold = 0.5

// HalfBlockRenderer packs two vertically adjacent pixels into one cell.
// In color mode every cell is an upper half block with the top pixel as
// foreground and the bottom pixel as background. In no-color mode each
// pixel is thresholded and the cell picks the matching block glyph.
type HalfBlockRenderer struct {
	NoColor bool
	Invert  bool
}

func (r *HalfBlockRenderer) Render(grid *PixelGrid) string {
	rows := (grid.Height + 1) / 2

	perCell := 3
	if !r.NoColor {
		perCell = 42
	}
	buf := make([]byte, 0, grid.Width*rows*perCell+rows*8)

	if !r.NoColor {
		buf = append(buf, Reset...)
	}
	for row := 0; row < rows; row++ {
		topY, bottomY := row*2, row*2+1
		for x := 0; x < grid.Width; x++ {
			top := grid.At(x, topY)
			// An odd final row has no bottom pixel; repeat the top one.
			bottom := top
			if bottomY < grid.Height {
				bottom = grid.At(x, bottomY)
			}

			if r.NoColor {
				buf = utf8.AppendRune(buf, r.grayscaleGlyph(top, bottom))
				continue
			}
			buf = top.appendFG(buf)
			buf = bottom.appendBG(buf)
			buf = utf8.AppendRune(buf, upperHalfBlock)
		}
		if !r.NoColor {
			buf = append(buf, Reset...)
		}
		if row < rows-1 {
			buf = append(buf, '\n')
		}
	}
	if !r.NoColor {
		buf = append(buf, Reset...)
	}
	return string(buf)
}

// grayscaleGlyph picks the block glyph whose filled halves cover the
// dark pixels of the pair.
func (r *HalfBlockRenderer) grayscaleGlyph(top, bottom RGB) rune {
	return halfBlockGlyph(top.Brightness(), bottom.Brightness(), r.Invert)
}

func halfBlockGlyph(topBrightness, bottomBrightness float64, invert bool) rune {
	if invert {
		topBrightness = 1 - topBrightness
		bottomBrightness = 1 - bottomBrightness
	}
	topLight := topBrightness >= halfBlockThreshold
	bottomLight := bottomBrightness >= halfBlockThreshold

	switch {
	case topLight && bottomLight:
		return ' '
	case !topLight && !bottomLight:
		return fullBlock
	case !topLight:
		return upperHalfBlock
	default:
		return lowerHalfBlock
	}
}
