package img2ascii

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// RenderMode selects how pixels are turned into glyphs.
type RenderMode int

const (
	// ModeHalfBlock packs two vertical pixels into one cell using the
	// upper half block glyph with independent fg/bg colors.
	ModeHalfBlock RenderMode = iota
	// ModeClassic maps each pixel's brightness onto a character ramp.
	ModeClassic
)

func (m RenderMode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeHalfBlock:
		return "halfblock"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode parses a mode name. "block" is accepted as an alias
// for "halfblock".
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return ModeClassic, nil
	case "halfblock", "block":
		return ModeHalfBlock, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q (want classic or halfblock)",
			ErrInvalidConfiguration, s)
	}
}

// CharacterSet selects the glyph ramp used by classic rendering.
type CharacterSet int

const (
	CharsetStandard CharacterSet = iota
	CharsetExtended
	CharsetSimple
	CharsetBlocks
	CharsetCustom
)

func (c CharacterSet) String() string {
	switch c {
	case CharsetStandard:
		return "standard"
	case CharsetExtended:
		return "extended"
	case CharsetSimple:
		return "simple"
	case CharsetBlocks:
		return "blocks"
	case CharsetCustom:
		return "custom"
	default:
		return fmt.Sprintf("CharacterSet(%d)", int(c))
	}
}

// ParseCharacterSet parses a preset name.
func ParseCharacterSet(s string) (CharacterSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return CharsetStandard, nil
	case "extended":
		return CharsetExtended, nil
	case "simple":
		return CharsetSimple, nil
	case "blocks":
		return CharsetBlocks, nil
	case "custom":
		return CharsetCustom, nil
	default:
		return 0, fmt.Errorf("%w: unknown charset %q", ErrInvalidConfiguration, s)
	}
}

// Destination identifies the sink an artifact is delivered to.
type Destination int

const (
	DestConsole Destination = iota
	DestText
	DestHTML
	DestPNG
)

func (d Destination) String() string {
	switch d {
	case DestConsole:
		return "console"
	case DestText:
		return "text"
	case DestHTML:
		return "html"
	case DestPNG:
		return "png"
	default:
		return fmt.Sprintf("Destination(%d)", int(d))
	}
}

// DefaultWatchInterval is how often watch mode polls the terminal size.
const DefaultWatchInterval = 100 * time.Millisecond

// Options is the immutable configuration for one render invocation.
// Build it with NewOptions; in watch mode a fresh copy is taken for every
// re-render.
type Options struct {
	ImagePath string
	Mode      RenderMode
	Charset   CharacterSet
	// CustomChars is the ramp used when Charset is CharsetCustom, ordered
	// darkest to lightest.
	CustomChars string

	// Width and Height override the terminal bounds in character cells.
	// Zero means "use the terminal".
	Width  int
	Height int

	OutputPath string
	HTML       bool

	NoColor      bool
	Invert       bool
	PreserveANSI bool
	Watch        bool

	// Compact drops color escapes that repeat the active color.
	Compact bool
	// Sharpen runs a mild sharpening kernel over the resized pixels.
	Sharpen bool
	// Resample is the filter used to scale the image to the pixel grid.
	// The zero value is Lanczos3.
	Resample imageutil.Interpolation
	// FontPath is a TrueType font used by the PNG sink. Empty selects the
	// built-in bitmap face.
	FontPath string

	WatchInterval time.Duration
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates Options for imagePath with the defaults: half-block
// mode, extended charset, console output.
func NewOptions(imagePath string, opts ...Option) Options {
	o := Options{
		ImagePath:     imagePath,
		Mode:          ModeHalfBlock,
		Charset:       CharsetExtended,
		WatchInterval: DefaultWatchInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMode sets the render mode.
func WithMode(mode RenderMode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithCharset sets the classic-mode character set.
func WithCharset(set CharacterSet) Option {
	return func(o *Options) {
		o.Charset = set
	}
}

// WithCustomChars sets a custom ramp. A non-empty ramp forces
// CharsetCustom.
func WithCustomChars(chars string) Option {
	return func(o *Options) {
		o.CustomChars = chars
		if chars != "" {
			o.Charset = CharsetCustom
		}
	}
}

// WithWidth overrides the target width in character cells.
func WithWidth(width int) Option {
	return func(o *Options) {
		o.Width = width
	}
}

// WithHeight overrides the target height in character cells.
func WithHeight(height int) Option {
	return func(o *Options) {
		o.Height = height
	}
}

// WithOutput sends the artifact to a file instead of the console.
func WithOutput(path string) Option {
	return func(o *Options) {
		o.OutputPath = path
	}
}

// WithHTML selects the HTML sink. Requires WithOutput.
func WithHTML(html bool) Option {
	return func(o *Options) {
		o.HTML = html
	}
}

// WithNoColor disables color escapes.
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithInvert inverts the brightness mapping for light terminals.
func WithInvert(invert bool) Option {
	return func(o *Options) {
		o.Invert = invert
	}
}

// WithPreserveANSI keeps color escapes in plain text output.
func WithPreserveANSI(preserve bool) Option {
	return func(o *Options) {
		o.PreserveANSI = preserve
	}
}

// WithWatch enables the live resize loop for console output.
func WithWatch(watch bool) Option {
	return func(o *Options) {
		o.Watch = watch
	}
}

// WithCompact enables removal of redundant color escapes.
func WithCompact(compact bool) Option {
	return func(o *Options) {
		o.Compact = compact
	}
}

// WithSharpen enables the sharpening pre-pass.
func WithSharpen(sharpen bool) Option {
	return func(o *Options) {
		o.Sharpen = sharpen
	}
}

// WithResample sets the scaling filter.
func WithResample(interp imageutil.Interpolation) Option {
	return func(o *Options) {
		o.Resample = interp
	}
}

// WithFont sets the TrueType font used for PNG output.
func WithFont(path string) Option {
	return func(o *Options) {
		o.FontPath = path
	}
}

// WithWatchInterval sets the terminal polling interval for watch mode.
func WithWatchInterval(d time.Duration) Option {
	return func(o *Options) {
		o.WatchInterval = d
	}
}

// Destination derives the sink from the output settings: no path means
// the console, HTML wins over everything else, and a .png path selects
// the image sink.
func (o Options) Destination() Destination {
	switch {
	case o.OutputPath == "" && !o.HTML:
		return DestConsole
	case o.HTML:
		return DestHTML
	case strings.EqualFold(filepath.Ext(o.OutputPath), ".png"):
		return DestPNG
	default:
		return DestText
	}
}

// Ramp returns the character ramp selected by these options, reversed
// when Invert is set.
func (o Options) Ramp() Ramp {
	return NewRamp(o.Charset, o.CustomChars, o.Invert)
}

// Validate checks the option invariants that must hold before any file
// is touched.
func (o Options) Validate() error {
	if o.HTML && o.OutputPath == "" {
		return fmt.Errorf("%w: --html requires --output to specify the output file path",
			ErrInvalidConfiguration)
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative (got %dx%d)",
			ErrInvalidConfiguration, o.Width, o.Height)
	}
	if o.Watch && o.WatchInterval <= 0 {
		return fmt.Errorf("%w: watch interval must be positive", ErrInvalidConfiguration)
	}
	return nil
}
