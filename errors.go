package img2ascii

import "errors"

// Error classes reported by the conversion pipeline. Callers classify
// failures with errors.Is; the wrapped message carries the detail.
var (
	// ErrNotFound is returned when the input image does not exist.
	ErrNotFound = errors.New("image file not found")

	// ErrUnsupportedFormat is returned when the input extension is not one
	// of SupportedExtensions. No decode is attempted.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrInvalidConfiguration is returned for option combinations that can
	// never succeed, such as HTML output without an output path.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDecode is returned when the image library cannot parse the input.
	ErrDecode = errors.New("could not decode image")
)
