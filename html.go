package img2ascii

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ASCII Art - {{.Name}}</title>
    <style>
        body {
            background-color: #1a1a1a;
            margin: 0;
            padding: 20px;
            display: flex;
            justify-content: center;
            align-items: flex-start;
            min-height: 100vh;
        }
        pre {
            font-family: 'Consolas', 'Monaco', 'Courier New', monospace;
            font-size: 10px;
            line-height: 1.0;
            letter-spacing: 0;
            margin: 0;
            white-space: pre;
            color: #d0d0d0;
        }
        .container {
            background-color: #0d0d0d;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 4px 20px rgba(0, 0, 0, 0.5);
            overflow: auto;
            max-width: 100%;
        }
    </style>
</head>
<body>
    <div class="container">
        <pre>{{.Body}}</pre>
    </div>
</body>
</html>
`))

// HTMLSink saves the artifact as a standalone dark-themed HTML page with
// colors carried by inline-styled spans.
type HTMLSink struct {
	Path string
	// ImagePath names the source image in the page title.
	ImagePath string
	Status    io.Writer
}

func (s *HTMLSink) Write(artifact string) error {
	if s.Path == "" {
		return fmt.Errorf("%w: output path is required for HTML output",
			ErrInvalidConfiguration)
	}
	page, err := RenderHTMLPage(artifact, filepath.Base(s.ImagePath))
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, page, 0o644); err != nil {
		return fmt.Errorf("failed to write html file: %w", err)
	}
	printStatus(s.Status, "HTML file saved to: %s\n", s.Path)
	return nil
}

// RenderHTMLPage wraps the converted artifact in the page template.
func RenderHTMLPage(artifact, imageName string) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlPage.Execute(&buf, struct {
		Name string
		Body template.HTML
	}{
		Name: imageName,
		Body: template.HTML(ANSIToHTML(artifact)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	return buf.Bytes(), nil
}

// ANSIToHTML converts 24-bit SGR colors into <span> elements with inline
// color and background-color styles. Text is HTML-escaped. A span opens
// before the first glyph drawn with a color set and closes at a reset, a
// line break, a color change, or the end of input.
func ANSIToHTML(input string) string {
	var out strings.Builder
	out.Grow(len(input) * 2)

	var current, span sgrState
	inSpan := false
	closeSpan := func() {
		if inSpan {
			out.WriteString("</span>")
			inSpan = false
		}
	}

	scanANSI(input,
		func(params string) {
			current.apply(params)
			if inSpan && current != span {
				closeSpan()
			}
		},
		func(text string) {
			// ESC bytes not part of a complete SGR never reach the page.
			text = strings.ReplaceAll(text, ESC, "")
			for len(text) > 0 {
				i := strings.IndexAny(text, "\r\n")
				if i == 0 {
					closeSpan()
					out.WriteByte(text[0])
					text = text[1:]
					continue
				}
				chunk := text
				if i > 0 {
					chunk = text[:i]
				}
				if (current.hasFG || current.hasBG) && !inSpan {
					writeSpanOpen(&out, current)
					span, inSpan = current, true
				}
				out.WriteString(html.EscapeString(chunk))
				text = text[len(chunk):]
			}
		})
	closeSpan()
	return out.String()
}

func writeSpanOpen(out *strings.Builder, st sgrState) {
	out.WriteString(`<span style="`)
	if st.hasFG {
		writeCSSColor(out, "color", st.fg)
	}
	if st.hasBG {
		writeCSSColor(out, "background-color", st.bg)
	}
	out.WriteString(`">`)
}

func writeCSSColor(out *strings.Builder, property string, c RGB) {
	out.WriteString(property)
	out.WriteString(":rgb(")
	out.WriteString(strconv.Itoa(int(c.R)))
	out.WriteByte(',')
	out.WriteString(strconv.Itoa(int(c.G)))
	out.WriteByte(',')
	out.WriteString(strconv.Itoa(int(c.B)))
	out.WriteString(");")
}
