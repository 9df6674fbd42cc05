package img2ascii

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2ascii/imageutil"
)

// Colors used where the artifact does not set one, matching the HTML
// page theme.
var (
	defaultBackground = RGB{R: 0x0d, G: 0x0d, B: 0x0d}
	defaultForeground = RGB{R: 0xd0, G: 0xd0, B: 0xd0}
)

// PNGSink rasterizes the artifact into a PNG image, one CellWidth x
// CellHeight tile per terminal cell.
type PNGSink struct {
	Path       string
	Face       font.Face
	CellWidth  int
	CellHeight int
	Status     io.Writer
}

func (s *PNGSink) Write(artifact string) error {
	if s.Path == "" {
		return fmt.Errorf("%w: output path is required for png output",
			ErrInvalidConfiguration)
	}
	img := RasterizeANSI(artifact, s.Face, s.CellWidth, s.CellHeight)
	if err := imageutil.SavePNG(img.RGBA, s.Path); err != nil {
		return fmt.Errorf("failed to write png file: %w", err)
	}
	printStatus(s.Status, "PNG image saved to: %s\n", s.Path)
	return nil
}

// cell is one terminal cell of a parsed artifact.
type cell struct {
	Rune rune
	FG   RGB
	BG   RGB
	// Wide marks the first of two cells occupied by a double-width
	// rune; the following cell is a placeholder with Rune == 0.
	Wide bool
}

// parseCells splits an artifact into rows of cells, resolving the
// active colors for each glyph.
func parseCells(artifact string) [][]cell {
	var (
		rows  [][]cell
		row   []cell
		state sgrState
	)
	scanANSI(artifact,
		func(params string) {
			state.apply(params)
		},
		func(text string) {
			for _, r := range text {
				switch r {
				case '\n':
					rows = append(rows, row)
					row = nil
					continue
				case '\r':
					continue
				}
				c := cell{Rune: r, FG: defaultForeground, BG: defaultBackground}
				if state.hasFG {
					c.FG = state.fg
				}
				if state.hasBG {
					c.BG = state.bg
				}
				w := runewidth.RuneWidth(r)
				if w == 0 {
					continue
				}
				c.Wide = w > 1
				row = append(row, c)
				if c.Wide {
					row = append(row, cell{FG: c.FG, BG: c.BG})
				}
			}
		})
	return append(rows, row)
}

// RasterizeANSI draws an artifact onto an image. Block elements are
// drawn geometrically so half-block art keeps its exact shape; other
// glyphs are drawn with face.
func RasterizeANSI(artifact string, face font.Face, cellWidth, cellHeight int) *imageutil.RGBAImage {
	rows := parseCells(artifact)
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	img := imageutil.NewRGBAImage(max(1, cols*cellWidth), max(1, len(rows)*cellHeight))
	fillRect(img, img.Bounds(), defaultBackground)

	ascent := face.Metrics().Ascent.Ceil()
	for y, row := range rows {
		for x, c := range row {
			rect := image.Rect(x*cellWidth, y*cellHeight, (x+1)*cellWidth, (y+1)*cellHeight)
			drawCell(img, rect, c, face, ascent)
		}
	}
	return img
}

func drawCell(img *imageutil.RGBAImage, rect image.Rectangle, c cell, face font.Face, ascent int) {
	fillRect(img, rect, c.BG)
	if c.Rune == 0 || c.Rune == ' ' {
		return
	}

	if quad, ok := blockQuadrants[c.Rune]; ok {
		drawQuadrants(img, rect, quad, c.FG)
		return
	}
	if t, ok := shadeDensity[c.Rune]; ok {
		fillRect(img, rect, blend(c.BG, c.FG, t))
		return
	}

	d := &font.Drawer{
		Dst:  img.RGBA,
		Src:  image.NewUniform(c.FG.toColor()),
		Face: face,
		Dot:  fixed.P(rect.Min.X, rect.Min.Y+ascent),
	}
	d.DrawString(string(c.Rune))
}

// quadrants marks which quarters of a cell a block element fills, in
// the order top-left, top-right, bottom-left, bottom-right.
type quadrants [4]bool

var blockQuadrants = map[rune]quadrants{
	'▗': {false, false, false, true},
	'▖': {false, false, true, false},
	'▄': {false, false, true, true},
	'▝': {false, true, false, false},
	'▐': {false, true, false, true},
	'▞': {false, true, true, false},
	'▟': {false, true, true, true},
	'▘': {true, false, false, false},
	'▚': {true, false, false, true},
	'▌': {true, false, true, false},
	'▙': {true, false, true, true},
	'▀': {true, true, false, false},
	'▜': {true, true, false, true},
	'▛': {true, true, true, false},
	'█': {true, true, true, true},
}

// shadeDensity is the share of foreground in each shade glyph.
var shadeDensity = map[rune]float64{
	'░': 0.25,
	'▒': 0.5,
	'▓': 0.75,
}

// drawQuadrants fills the active quarters of rect with fg.
func drawQuadrants(img *imageutil.RGBAImage, rect image.Rectangle, quad quadrants, fg RGB) {
	midX := rect.Min.X + rect.Dx()/2
	midY := rect.Min.Y + rect.Dy()/2
	parts := [4]image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, midX, midY),
		image.Rect(midX, rect.Min.Y, rect.Max.X, midY),
		image.Rect(rect.Min.X, midY, midX, rect.Max.Y),
		image.Rect(midX, midY, rect.Max.X, rect.Max.Y),
	}
	for i, active := range quad {
		if active {
			fillRect(img, parts[i], fg)
		}
	}
}

func fillRect(img *imageutil.RGBAImage, rect image.Rectangle, c RGB) {
	draw.Draw(img.RGBA, rect, image.NewUniform(c.toColor()), image.Point{}, draw.Src)
}

// blend mixes from toward to by t in RGB space.
func blend(from, to RGB, t float64) RGB {
	a := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	b := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}
