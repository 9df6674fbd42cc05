package img2ascii

import (
	"fmt"
	"io"
	"os"
)

// Sink delivers a rendered artifact to its destination.
type Sink interface {
	Write(artifact string) error
}

// NewSink returns the sink for opts.Destination(). Console output and
// save confirmations go to stdout.
func NewSink(opts Options, stdout io.Writer) (Sink, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Destination() {
	case DestHTML:
		return &HTMLSink{
			Path:      opts.OutputPath,
			ImagePath: opts.ImagePath,
			Status:    stdout,
		}, nil
	case DestPNG:
		face, cellW, cellH, err := LoadFontFace(opts.FontPath, DefaultFontSize)
		if err != nil {
			return nil, err
		}
		return &PNGSink{
			Path:       opts.OutputPath,
			Face:       face,
			CellWidth:  cellW,
			CellHeight: cellH,
			Status:     stdout,
		}, nil
	case DestText:
		return &TextSink{
			Path:         opts.OutputPath,
			PreserveANSI: opts.PreserveANSI,
			Status:       stdout,
		}, nil
	default:
		return &ConsoleSink{Out: stdout}, nil
	}
}

// ConsoleSink writes the artifact followed by a newline.
type ConsoleSink struct {
	Out io.Writer
}

func (s *ConsoleSink) Write(artifact string) error {
	if _, err := io.WriteString(s.Out, artifact+"\n"); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

// TextSink saves the artifact to a file, stripping color escapes unless
// PreserveANSI is set.
type TextSink struct {
	Path         string
	PreserveANSI bool
	Status       io.Writer
}

func (s *TextSink) Write(artifact string) error {
	if s.Path == "" {
		return fmt.Errorf("%w: output path is required for text output",
			ErrInvalidConfiguration)
	}
	content := artifact
	if !s.PreserveANSI {
		content = StripANSI(content)
	}
	if err := os.WriteFile(s.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}
	printStatus(s.Status, "ASCII art saved to: %s\n", s.Path)
	return nil
}

func printStatus(w io.Writer, format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format, args...)
	}
}
