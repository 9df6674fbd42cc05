package img2ascii

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/wbrown/img2ascii/internal/log"
	"github.com/wbrown/img2ascii/internal/terminal"
)

// Processor runs the load, render and output pipeline. It is safe to
// reuse across invocations; each call takes its own Options.
type Processor struct {
	// Stdout receives console output and save confirmations.
	Stdout io.Writer
	// Terminal is queried for bounds when no explicit size is given.
	Terminal TerminalSizer
}

// ProcessorOption is a functional option for configuring a Processor.
type ProcessorOption func(*Processor)

// NewProcessor creates a Processor writing to os.Stdout and sized by
// the terminal attached to it.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		Stdout:   os.Stdout,
		Terminal: terminal.Stdout(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithStdout sets the writer for console output.
func WithStdout(w io.Writer) ProcessorOption {
	return func(p *Processor) {
		p.Stdout = w
	}
}

// WithTerminal sets the terminal size source.
func WithTerminal(sizer TerminalSizer) ProcessorOption {
	return func(p *Processor) {
		p.Terminal = sizer
	}
}

// Convert loads and renders the image named by opts, returning the
// artifact without delivering it.
func (p *Processor) Convert(opts Options) (string, error) {
	begin := time.Now()
	grid, layout, err := LoadPixelGrid(opts, p.Terminal)
	if err != nil {
		return "", err
	}
	log.Debug("loaded %s: %dx%d cells, %dx%d pixels in %s",
		opts.ImagePath, layout.Columns, layout.Rows,
		layout.PixelWidth, layout.PixelHeight, time.Since(begin))

	begin = time.Now()
	artifact := Render(grid, opts)
	if opts.Compact && !opts.NoColor {
		before := len(artifact)
		artifact = CompressANSI(artifact)
		log.Debug("compacted %d -> %d bytes", before, len(artifact))
	}
	log.Debug("rendered %s mode in %s (%d bytes)", opts.Mode, time.Since(begin), len(artifact))
	return artifact, nil
}

// Process runs the full pipeline once: validate, load, render and write
// to the configured sink. Configuration errors are reported before any
// file is read.
func (p *Processor) Process(opts Options) error {
	sink, err := NewSink(opts, p.Stdout)
	if err != nil {
		return err
	}
	if err := ValidateInput(opts.ImagePath); err != nil {
		return err
	}

	artifact, err := p.Convert(opts)
	if err != nil {
		return err
	}

	begin := time.Now()
	if err := sink.Write(artifact); err != nil {
		return err
	}
	log.Debug("wrote %s output in %s", opts.Destination(), time.Since(begin))
	return nil
}

// Run processes opts once, or hands off to a Watcher when watch mode is
// requested for console output. Watch is ignored for file outputs.
func (p *Processor) Run(ctx context.Context, opts Options) error {
	if opts.Watch && opts.Destination() == DestConsole {
		if err := opts.Validate(); err != nil {
			return err
		}
		return NewWatcher(p).Run(ctx, opts)
	}
	if opts.Watch {
		log.Warn("watch mode ignored for %s output", opts.Destination())
	}
	return p.Process(opts)
}
