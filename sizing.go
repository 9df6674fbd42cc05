package img2ascii

import (
	"errors"
	"fmt"

	"github.com/wbrown/img2ascii/internal/log"
)

// Fallback terminal size used when the real size cannot be queried.
const (
	DefaultTerminalWidth  = 120
	DefaultTerminalHeight = 40
)

// CharAspectRatio is the height-to-width ratio of a terminal cell.
const CharAspectRatio = 2.0

// TerminalSizer reports the current terminal size in character cells.
type TerminalSizer interface {
	Size() (width, height int, err error)
}

// TargetDimensions returns the maximum character grid available for a
// render. Explicit overrides in opts are returned as given. Otherwise the
// terminal size less one cell in each axis is used, so the output never
// scrolls or wraps. A nil sizer or a failed query yields the default
// terminal size as is.
func TargetDimensions(opts Options, sizer TerminalSizer) (width, height int) {
	if opts.Width > 0 && opts.Height > 0 {
		return opts.Width, opts.Height
	}

	width, height = DefaultTerminalWidth, DefaultTerminalHeight
	if w, h, err := querySize(sizer); err == nil {
		width, height = max(1, w-1), max(1, h-1)
	} else {
		log.Info("terminal size unavailable (%v), using %dx%d", err, width, height)
	}

	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	return width, height
}

// errNoTerminal is returned by querySize when there is nothing to ask.
var errNoTerminal = errors.New("no terminal")

// querySize asks sizer for the terminal size. Sizers that can tell
// whether they are attached to a terminal are checked first.
func querySize(sizer TerminalSizer) (width, height int, err error) {
	if sizer == nil {
		return 0, 0, errNoTerminal
	}
	if tty, ok := sizer.(interface{ IsTerminal() bool }); ok && !tty.IsTerminal() {
		log.Debug("stdout is not a terminal")
		return 0, 0, errNoTerminal
	}
	width, height, err = sizer.Size()
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid terminal size %dx%d", width, height)
	}
	return width, height, nil
}

// TargetPixelSize fits an image into a maxWidth x maxHeight character
// grid preserving its aspect ratio. A character is taken to be twice as
// tall as it is wide, so the row count is halved. The limiting axis is
// picked by comparing the image aspect against the grid aspect; both
// results are at least 1.
func TargetPixelSize(imageWidth, imageHeight, maxWidth, maxHeight int) (charWidth, charHeight int) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return max(1, maxWidth), max(1, maxHeight)
	}
	aspect := float64(imageWidth) / float64(imageHeight)

	// Width-limited unless maxWidth/(aspect*2) would exceed maxHeight,
	// i.e. maxWidth > maxHeight*aspect*2.
	if float64(maxWidth) <= float64(maxHeight)*aspect*CharAspectRatio {
		charWidth = maxWidth
		charHeight = int(float64(maxWidth) / aspect / CharAspectRatio)
	} else {
		charHeight = maxHeight
		charWidth = int(float64(maxHeight) * aspect * CharAspectRatio)
	}
	return max(1, charWidth), max(1, charHeight)
}

// Layout is the resolved geometry for one render.
type Layout struct {
	// Columns and Rows are the output size in character cells.
	Columns int
	Rows    int
	// PixelWidth and PixelHeight are the dimensions the source image is
	// resampled to.
	PixelWidth  int
	PixelHeight int
}

// ComputeLayout resolves the output geometry for an image of the given
// size. Half-block mode samples two pixel rows per character row.
// Classic mode narrows the column budget by the ramp's cell width.
func ComputeLayout(imageWidth, imageHeight int, opts Options, sizer TerminalSizer) Layout {
	maxW, maxH := TargetDimensions(opts, sizer)
	log.Debug("target bounds %dx%d", maxW, maxH)
	if opts.Mode == ModeClassic {
		if cw := opts.Ramp().CellWidth(); cw > 1 {
			maxW = max(1, maxW/cw)
		}
	}

	cols, rows := TargetPixelSize(imageWidth, imageHeight, maxW, maxH)
	layout := Layout{
		Columns:     cols,
		Rows:        rows,
		PixelWidth:  cols,
		PixelHeight: rows,
	}
	if opts.Mode == ModeHalfBlock {
		layout.PixelHeight = rows * 2
	}
	return layout
}

