package img2ascii

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Preset ramps, ordered from the densest glyph to the sparsest.
const (
	StandardRamp = "@%#*+=-:. "
	ExtendedRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "
	SimpleRamp   = "@#:. "
	BlocksRamp   = "█▓▒░ "
)

// Ramp is an ordered glyph sequence used by classic rendering. Index 0
// is the densest glyph and the last index the sparsest.
type Ramp []rune

// NewRamp resolves a character set to its ramp. CharsetCustom uses
// custom, falling back to the standard ramp when custom is empty. When
// invert is set the ramp is reversed.
func NewRamp(set CharacterSet, custom string, invert bool) Ramp {
	var chars string
	switch set {
	case CharsetExtended:
		chars = ExtendedRamp
	case CharsetSimple:
		chars = SimpleRamp
	case CharsetBlocks:
		chars = BlocksRamp
	case CharsetCustom:
		chars = custom
		if chars == "" {
			chars = StandardRamp
		}
	default:
		chars = StandardRamp
	}

	ramp := Ramp(chars)
	if invert {
		for i, j := 0, len(ramp)-1; i < j; i, j = i+1, j-1 {
			ramp[i], ramp[j] = ramp[j], ramp[i]
		}
	}
	return ramp
}

// Index maps a brightness in [0, 1] to a ramp position. Bright pixels
// land on the dense end of the ramp so they show up as ink on a dark
// terminal.
func (r Ramp) Index(brightness float64) int {
	n := len(r)
	if n == 0 {
		return 0
	}
	idx := int(math.Round(brightness * float64(n-1)))
	idx = max(0, min(n-1, idx))
	return n - 1 - idx
}

// Glyph returns the glyph for a brightness in [0, 1].
func (r Ramp) Glyph(brightness float64) rune {
	if len(r) == 0 {
		return ' '
	}
	return r[r.Index(brightness)]
}

// CellWidth returns the widest terminal cell width of any glyph in the
// ramp, at least 1. Sizing divides the column budget by it so wide
// custom glyphs do not overflow the terminal.
func (r Ramp) CellWidth() int {
	width := 1
	for _, c := range r {
		width = max(width, runewidth.RuneWidth(c))
	}
	return width
}
