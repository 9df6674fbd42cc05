package img2ascii

// Renderer turns a pixel grid into a rendered artifact: glyphs
// interleaved with 24-bit color escapes, rows separated by "\n" with no
// trailing newline. Renderers hold no state between calls.
type Renderer interface {
	Render(grid *PixelGrid) string
}

// NewRenderer returns the renderer selected by opts.Mode.
func NewRenderer(opts Options) Renderer {
	switch opts.Mode {
	case ModeClassic:
		return &ClassicRenderer{
			Ramp:    opts.Ramp(),
			NoColor: opts.NoColor,
		}
	default:
		return &HalfBlockRenderer{
			NoColor: opts.NoColor,
			Invert:  opts.Invert,
		}
	}
}

// Render converts grid with the renderer selected by opts.
func Render(grid *PixelGrid, opts Options) string {
	return NewRenderer(opts).Render(grid)
}
