package img2ascii

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/log"
)

// SupportedExtensions lists the accepted input file extensions.
var SupportedExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff", ".tif",
}

// ValidateInput checks that path names an existing regular file with a
// supported extension. It never opens the file.
func ValidateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	ext := filepath.Ext(path)
	if !slices.Contains(SupportedExtensions, strings.ToLower(ext)) {
		return fmt.Errorf("%w: %s. Supported formats: %s",
			ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions, ", "))
	}
	return nil
}

// LoadImage validates and decodes the image at path. Animated GIFs
// yield their first frame.
func LoadImage(path string) (*imageutil.RGBAImage, error) {
	if err := ValidateInput(path); err != nil {
		return nil, err
	}
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// ResampleImage resizes img to the layout's pixel dimensions with the
// given filter, optionally sharpening the result.
func ResampleImage(img *imageutil.RGBAImage, layout Layout, interp imageutil.Interpolation, sharpen bool) *PixelGrid {
	resized := imageutil.Resize(img, layout.PixelWidth, layout.PixelHeight, interp)
	if sharpen {
		resized = imageutil.Sharpen(resized)
	}
	return PixelGridFromImage(resized.RGBA)
}

// LoadPixelGrid runs the load stage of the pipeline: validate, decode,
// size and resample.
func LoadPixelGrid(opts Options, sizer TerminalSizer) (*PixelGrid, Layout, error) {
	img, err := LoadImage(opts.ImagePath)
	if err != nil {
		return nil, Layout{}, err
	}
	layout := ComputeLayout(img.Width(), img.Height(), opts, sizer)
	log.Debug("decoded %s: %dx%d, resampling with %s", opts.ImagePath, img.Width(), img.Height(), opts.Resample)
	return ResampleImage(img, layout, opts.Resample, opts.Sharpen), layout, nil
}
