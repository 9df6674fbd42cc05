package img2ascii

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/wbrown/img2ascii/imageutil"
)

const sampleArt = "\x1b[0m\x1b[38;2;10;20;30m@\x1b[38;2;40;50;60m#\x1b[0m\n\x1b[38;2;1;2;3m:\x1b[0m\x1b[0m"

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	if err := (&ConsoleSink{Out: &buf}).Write(sampleArt); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != sampleArt+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestTextSinkStripsANSI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.txt")
	var status bytes.Buffer
	sink := &TextSink{Path: path, Status: &status}
	if err := sink.Write(sampleArt); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@#\n:" {
		t.Errorf("file contents %q", data)
	}
	if got := status.String(); got != "ASCII art saved to: "+path+"\n" {
		t.Errorf("status %q", got)
	}
}

func TestTextSinkPreserveANSI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.ans")
	if err := (&TextSink{Path: path, PreserveANSI: true}).Write(sampleArt); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleArt {
		t.Errorf("file contents %q", data)
	}
}

func TestFileSinksRequirePath(t *testing.T) {
	for name, sink := range map[string]Sink{
		"text": &TextSink{},
		"html": &HTMLSink{},
		"png":  &PNGSink{Face: basicfont.Face7x13, CellWidth: 7, CellHeight: 13},
	} {
		if err := sink.Write("x"); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: got %v, want ErrInvalidConfiguration", name, err)
		}
	}
}

func TestANSIToHTMLSingleSpan(t *testing.T) {
	got := ANSIToHTML("\x1b[38;2;10;20;30m\x1b[48;2;40;50;60mX\x1b[0m")
	want := `<span style="color:rgb(10,20,30);background-color:rgb(40,50,60);">X</span>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestANSIToHTML(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{
			"escapes markup",
			`<a href="x">&</a>`,
			"&lt;a href=&#34;x&#34;&gt;&amp;&lt;/a&gt;",
		},
		{
			"newline closes span",
			"\x1b[38;2;1;2;3mA\nB",
			`<span style="color:rgb(1,2,3);">A</span>` + "\n" + `<span style="color:rgb(1,2,3);">B</span>`,
		},
		{
			"color change opens new span",
			"\x1b[38;2;1;2;3mA\x1b[38;2;4;5;6mB",
			`<span style="color:rgb(1,2,3);">A</span><span style="color:rgb(4,5,6);">B</span>`,
		},
		{
			"repeated color keeps span",
			"\x1b[38;2;1;2;3mA\x1b[38;2;1;2;3mB\x1b[0m",
			`<span style="color:rgb(1,2,3);">AB</span>`,
		},
		{
			"no span without color",
			"\x1b[0mplain\x1b[0m",
			"plain",
		},
		{
			"background only",
			"\x1b[48;2;7;8;9m ",
			`<span style="background-color:rgb(7,8,9);"> </span>`,
		},
		{
			"unterminated escape drops ESC",
			"\x1b[12",
			"[12",
		},
		{
			"trailing escape introducer",
			"a\x1b[",
			"a[",
		},
		{
			"stray ESC inside span",
			"\x1b[38;2;1;2;3mA\x1bB",
			`<span style="color:rgb(1,2,3);">AB</span>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ANSIToHTML(tt.in); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestHTMLSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	var status bytes.Buffer
	sink := &HTMLSink{Path: path, ImagePath: "/photos/<cat>.png", Status: &status}
	if err := sink.Write(sampleArt); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>ASCII Art - &lt;cat&gt;.png</title>",
		"background-color: #1a1a1a;",
		"font-size: 10px;",
		"line-height: 1.0;",
		"background-color: #0d0d0d;",
		"border-radius: 8px;",
		`<pre><span style="color:rgb(10,20,30);">@</span>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, "\x1b") {
		t.Error("page contains raw escape characters")
	}
	if got := status.String(); got != "HTML file saved to: "+path+"\n" {
		t.Errorf("status %q", got)
	}
}

func TestParseCells(t *testing.T) {
	rows := parseCells("\x1b[38;2;1;2;3mあb\x1b[0m\nc")
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if len(rows[0]) != 3 || !rows[0][0].Wide || rows[0][1].Rune != 0 {
		t.Errorf("wide rune not expanded: %+v", rows[0])
	}
	if rows[0][2].FG != (RGB{1, 2, 3}) {
		t.Errorf("fg = %v", rows[0][2].FG)
	}
	if rows[1][0].FG != defaultForeground || rows[1][0].BG != defaultBackground {
		t.Errorf("reset cell colors %+v", rows[1][0])
	}
}

func TestRasterizeHalfBlock(t *testing.T) {
	img := RasterizeANSI("\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀\x1b[0m", basicfont.Face7x13, 7, 13)
	if img.Width() != 7 || img.Height() != 13 {
		t.Fatalf("size %dx%d, want 7x13", img.Width(), img.Height())
	}
	redPx := imageutil.RGB{R: 255}
	bluePx := imageutil.RGB{B: 255}
	for _, p := range [][2]int{{0, 0}, {6, 5}} {
		if got := img.GetRGB(p[0], p[1]); got != redPx {
			t.Errorf("(%d,%d) = %v, want red", p[0], p[1], got)
		}
	}
	for _, p := range [][2]int{{0, 6}, {6, 12}} {
		if got := img.GetRGB(p[0], p[1]); got != bluePx {
			t.Errorf("(%d,%d) = %v, want blue", p[0], p[1], got)
		}
	}
}

func TestRasterizeShadeAndText(t *testing.T) {
	art := "\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m░\x1b[0m\nA"
	img := RasterizeANSI(art, basicfont.Face7x13, 7, 13)
	if img.Width() != 7 || img.Height() != 26 {
		t.Fatalf("size %dx%d, want 7x26", img.Width(), img.Height())
	}
	if r := img.GetRGB(3, 6).R; r < 60 || r > 68 {
		t.Errorf("light shade R = %d, want about 64", r)
	}

	lit := 0
	for y := 13; y < 26; y++ {
		for x := 0; x < 7; x++ {
			if img.GetRGB(x, y) != (imageutil.RGB{R: 0x0d, G: 0x0d, B: 0x0d}) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' drew no pixels")
	}
}

func TestPNGSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.png")
	var status bytes.Buffer
	sink := &PNGSink{
		Path:       path,
		Face:       basicfont.Face7x13,
		CellWidth:  7,
		CellHeight: 13,
		Status:     &status,
	}
	if err := sink.Write(sampleArt); err != nil {
		t.Fatal(err)
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 14 || img.Height() != 26 {
		t.Errorf("size %dx%d, want 14x26", img.Width(), img.Height())
	}
	if got := status.String(); got != "PNG image saved to: "+path+"\n" {
		t.Errorf("status %q", got)
	}
}

func TestNewSink(t *testing.T) {
	var stdout bytes.Buffer
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"console", NewOptions("in.png"), "*img2ascii.ConsoleSink"},
		{"text", NewOptions("in.png", WithOutput("out.txt")), "*img2ascii.TextSink"},
		{"html", NewOptions("in.png", WithOutput("out.html"), WithHTML(true)), "*img2ascii.HTMLSink"},
		{"html wins over png", NewOptions("in.png", WithOutput("out.png"), WithHTML(true)), "*img2ascii.HTMLSink"},
		{"png", NewOptions("in.png", WithOutput("OUT.PNG")), "*img2ascii.PNGSink"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := NewSink(tt.opts, &stdout)
			if err != nil {
				t.Fatal(err)
			}
			if got := typeName(sink); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := NewSink(NewOptions("in.png", WithHTML(true)), &stdout); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("html without path: got %v", err)
	}
	_, err := NewSink(NewOptions("in.png", WithOutput("out.png"), WithFont("/no/such/font.ttf")), &stdout)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("missing font: got %v", err)
	}
}
