package img2ascii

import (
	"errors"
	"testing"
)

func TestTargetPixelSize(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"wide image is width limited", 200, 100, 80, 40, 80, 20},
		{"tall image is height limited", 100, 200, 80, 40, 40, 40},
		{"square in wide terminal", 100, 100, 120, 40, 80, 40},
		{"extreme panorama clamps rows", 1000, 1, 10, 10, 10, 1},
		{"extreme tower clamps columns", 1, 1000, 10, 10, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := TargetPixelSize(tt.imgW, tt.imgH, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTargetPixelSizeWithinBounds(t *testing.T) {
	for imgW := 1; imgW <= 400; imgW += 37 {
		for imgH := 1; imgH <= 400; imgH += 41 {
			w, h := TargetPixelSize(imgW, imgH, 79, 23)
			if w < 1 || h < 1 || w > 79 || h > 23 {
				t.Fatalf("%dx%d -> %dx%d out of bounds", imgW, imgH, w, h)
			}
			if w != 79 && h != 23 {
				t.Fatalf("%dx%d -> %dx%d fills neither axis", imgW, imgH, w, h)
			}
		}
	}
}

func TestTargetDimensions(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		sizer        TerminalSizer
		wantW, wantH int
	}{
		{"explicit overrides", Options{Width: 50, Height: 20}, fixedSizer{w: 200, h: 60}, 50, 20},
		{"terminal minus margin", Options{}, fixedSizer{w: 100, h: 30}, 99, 29},
		{"width override only", Options{Width: 50}, fixedSizer{w: 100, h: 30}, 50, 29},
		{"height override only", Options{Height: 12}, fixedSizer{w: 100, h: 30}, 99, 12},
		{"query failure", Options{}, fixedSizer{err: errors.New("not a tty")}, 120, 40},
		{"nil sizer", Options{}, nil, 120, 40},
		{"zero size", Options{}, fixedSizer{}, 120, 40},
		{"not a terminal", Options{}, ttySizer{fixedSizer{w: 100, h: 30}, false}, 120, 40},
		{"attached terminal", Options{}, ttySizer{fixedSizer{w: 100, h: 30}, true}, 99, 29},
		{"query failure width override", Options{Width: 50}, fixedSizer{err: errors.New("not a tty")}, 50, 40},
		{"tiny terminal", Options{}, fixedSizer{w: 1, h: 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := TargetDimensions(tt.opts, tt.sizer)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestComputeLayout(t *testing.T) {
	sizer := fixedSizer{w: 81, h: 41}

	half := ComputeLayout(200, 100, NewOptions("x.png"), sizer)
	if half != (Layout{Columns: 80, Rows: 20, PixelWidth: 80, PixelHeight: 40}) {
		t.Errorf("half-block layout %+v", half)
	}

	classic := ComputeLayout(200, 100, NewOptions("x.png", WithMode(ModeClassic)), sizer)
	if classic != (Layout{Columns: 80, Rows: 20, PixelWidth: 80, PixelHeight: 20}) {
		t.Errorf("classic layout %+v", classic)
	}

	wide := ComputeLayout(200, 100, NewOptions("x.png",
		WithMode(ModeClassic), WithCustomChars("あい")), sizer)
	if wide.Columns != 40 || wide.Rows != 10 {
		t.Errorf("wide glyph layout %+v, want 40x10", wide)
	}
}
