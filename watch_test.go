package img2ascii

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wbrown/img2ascii/internal/terminal"
)

// scriptedSizer returns sizes in order, then calls done and repeats the
// last size.
type scriptedSizer struct {
	sizes [][2]int
	next  int
	done  func()
}

func (s *scriptedSizer) Size() (int, int, error) {
	if s.next >= len(s.sizes) {
		s.done()
		last := s.sizes[len(s.sizes)-1]
		return last[0], last[1], nil
	}
	size := s.sizes[s.next]
	s.next++
	return size[0], size[1], nil
}

func newTestWatcher(out *bytes.Buffer, sizer TerminalSizer, render func(Options) error) *Watcher {
	return &Watcher{
		Out:      out,
		Terminal: sizer,
		Interval: time.Millisecond,
		render:   render,
	}
}

func TestWatcherRendersOncePerSize(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sizer := &scriptedSizer{
		sizes: [][2]int{{80, 24}, {80, 24}, {100, 30}, {100, 30}, {100, 30}, {60, 20}},
		done:  cancel,
	}
	var rendered []Options
	var out bytes.Buffer
	w := newTestWatcher(&out, sizer, func(o Options) error {
		rendered = append(rendered, o)
		return nil
	})

	if err := w.Run(ctx, Options{ImagePath: "x.png", Watch: true}); err != nil {
		t.Fatal(err)
	}

	want := [][2]int{{79, 23}, {99, 29}, {59, 19}}
	if len(rendered) != len(want) {
		t.Fatalf("rendered %d times, want %d", len(rendered), len(want))
	}
	for i, o := range rendered {
		if o.Width != want[i][0] || o.Height != want[i][1] {
			t.Errorf("render %d at %dx%d, want %dx%d", i, o.Width, o.Height, want[i][0], want[i][1])
		}
		if o.Watch {
			t.Errorf("render %d still has watch set", i)
		}
	}

	s := out.String()
	if !strings.HasPrefix(s, terminal.HideCursorSeq) {
		t.Error("cursor not hidden on start")
	}
	if !strings.Contains(s, "Watch mode: Press Ctrl+C to exit. Resize terminal to re-render.") {
		t.Error("missing banner")
	}
	if !strings.HasSuffix(s, terminal.ShowCursorSeq+"\nWatch mode ended.\n") {
		t.Errorf("cursor not restored at exit: %q", s[max(0, len(s)-40):])
	}
}

func TestWatcherKeepsExplicitSize(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sizer := &scriptedSizer{sizes: [][2]int{{100, 30}}, done: cancel}
	var got Options
	w := newTestWatcher(&bytes.Buffer{}, sizer, func(o Options) error {
		got = o
		return nil
	})
	if err := w.Run(ctx, Options{Width: 30}); err != nil {
		t.Fatal(err)
	}
	if got.Width != 30 || got.Height != 29 {
		t.Errorf("got %dx%d, want 30x29", got.Width, got.Height)
	}
}

func TestWatcherSizeFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var got Options
	w := newTestWatcher(&bytes.Buffer{}, fixedSizer{err: errors.New("no tty")}, func(o Options) error {
		got = o
		cancel()
		return nil
	})
	if err := w.Run(ctx, Options{}); err != nil {
		t.Fatal(err)
	}
	if got.Width != 119 || got.Height != 39 {
		t.Errorf("got %dx%d, want 119x39", got.Width, got.Height)
	}
}

func TestWatcherRenderErrorRestoresCursor(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	w := newTestWatcher(&out, fixedSizer{w: 80, h: 24}, func(Options) error {
		return boom
	})

	if err := w.Run(context.Background(), Options{}); !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if !strings.Contains(out.String(), terminal.ShowCursorSeq) {
		t.Error("cursor not restored after a render error")
	}
}

func TestWatcherCancelledDuringStartDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renders := 0
	var out bytes.Buffer
	w := newTestWatcher(&out, fixedSizer{w: 80, h: 24}, func(Options) error {
		renders++
		return nil
	})
	w.StartDelay = time.Hour

	if err := w.Run(ctx, Options{}); err != nil {
		t.Fatal(err)
	}
	if renders != 0 {
		t.Errorf("rendered %d times after cancellation", renders)
	}
	if !strings.Contains(out.String(), "Watch mode ended.") {
		t.Error("missing exit message")
	}
}

func TestWatcherRendersThroughProcessor(t *testing.T) {
	path := writeImage(t, "red.png", newGradient(40, 20))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout bytes.Buffer
	sizer := &scriptedSizer{sizes: [][2]int{{21, 11}}, done: cancel}
	p := NewProcessor(WithStdout(&stdout), WithTerminal(sizer))
	w := NewWatcher(p)
	w.StartDelay = 0

	if err := w.Run(ctx, NewOptions(path, WithWatch(true), WithWatchInterval(time.Millisecond))); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(stdout.String(), "▀"); n != 20*5 {
		t.Errorf("rendered %d cells, want %d", n, 20*5)
	}
}
