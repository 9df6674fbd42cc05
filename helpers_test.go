package img2ascii

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
	red   = RGB{255, 0, 0}
	blue  = RGB{0, 0, 255}
)

// fixedSizer reports a constant terminal size.
type fixedSizer struct {
	w, h int
	err  error
}

func (s fixedSizer) Size() (int, int, error) {
	return s.w, s.h, s.err
}

// ttySizer is a fixedSizer that also reports whether it is a terminal.
type ttySizer struct {
	fixedSizer
	tty bool
}

func (s ttySizer) IsTerminal() bool {
	return s.tty
}

// gridOf builds a grid from rows of colors.
func gridOf(rows ...[]RGB) *PixelGrid {
	g := NewPixelGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, c)
		}
	}
	return g
}

// writeImage saves img as a PNG named name in a temp dir.
func writeImage(t *testing.T, name string, img *imageutil.RGBAImage) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := imageutil.SavePNG(img.RGBA, path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	return path
}

func newGradient(w, h int) *imageutil.RGBAImage {
	return imageutil.CreateGradientImage(w, h)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
