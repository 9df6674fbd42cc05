package imageutil

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Register decoders for every accepted input format.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, WebP and TIFF. Only the first frame of an
// animated GIF is returned.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodeImage(f)
}

// DecodeImage decodes an image from r and converts it to RGBA.
func DecodeImage(r io.Reader) (*RGBAImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// SavePNG saves an image as PNG to the specified path, replacing any
// existing file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
