package img2ascii

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/wbrown/img2ascii/internal/log"
	"github.com/wbrown/img2ascii/internal/terminal"
)

// DefaultWatchStartDelay is how long the watch banner stays up before
// the first render.
const DefaultWatchStartDelay = 1500 * time.Millisecond

// Watcher re-renders an image to the console whenever the terminal is
// resized. The cursor is hidden while it runs and always restored.
type Watcher struct {
	Out      io.Writer
	Terminal TerminalSizer
	// Interval is the terminal polling period.
	Interval time.Duration
	// StartDelay keeps the banner visible before the first render.
	StartDelay time.Duration

	render func(Options) error
}

// NewWatcher creates a Watcher that renders through p.
func NewWatcher(p *Processor) *Watcher {
	return &Watcher{
		Out:        p.Stdout,
		Terminal:   p.Terminal,
		Interval:   DefaultWatchInterval,
		StartDelay: DefaultWatchStartDelay,
		render:     p.Process,
	}
}

// Run polls the terminal size until ctx is cancelled, rendering once for
// every distinct size it observes. Each render gets a fresh copy of opts
// sized to the terminal, less one cell in each axis; explicit Width or
// Height in opts are kept. Cancellation returns nil. A failed render
// ends the loop and is returned.
func (w *Watcher) Run(ctx context.Context, opts Options) (err error) {
	interval := w.Interval
	if opts.WatchInterval > 0 {
		interval = opts.WatchInterval
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	terminal.HideCursor(w.Out)
	terminal.Clear(w.Out)
	defer func() {
		terminal.ShowCursor(w.Out)
		fmt.Fprintln(w.Out, "\nWatch mode ended.")
	}()

	fmt.Fprintln(w.Out, "Watch mode: Press Ctrl+C to exit. Resize terminal to re-render.")
	if !sleepContext(ctx, w.StartDelay) {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastW, lastH := -1, -1
	for {
		width, height := w.size()
		if width != lastW || height != lastH {
			lastW, lastH = width, height
			log.Debug("terminal resized to %dx%d", width, height)

			terminal.Clear(w.Out)
			if err := w.render(w.snapshot(opts, width, height)); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// size queries the terminal, falling back to the default size.
func (w *Watcher) size() (int, int) {
	if w.Terminal != nil {
		if width, height, err := w.Terminal.Size(); err == nil && width > 0 && height > 0 {
			return width, height
		}
	}
	return DefaultTerminalWidth, DefaultTerminalHeight
}

// snapshot derives the options for one render at the given terminal
// size. Watch is cleared so the render writes once to the console.
func (w *Watcher) snapshot(opts Options, termW, termH int) Options {
	snap := opts
	snap.Watch = false
	if snap.Width == 0 {
		snap.Width = max(1, termW-1)
	}
	if snap.Height == 0 {
		snap.Height = max(1, termH-1)
	}
	return snap
}

// sleepContext waits for d or until ctx is done, reporting whether the
// full duration elapsed.
func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
