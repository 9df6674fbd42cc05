package imageutil

import "math"

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// SharpeningKernel returns the mild sharpening kernel applied by the
// optional sharpen pre-pass.
func SharpeningKernel() *Kernel {
	return NewKernel([][]float64{
		{0, -0.5, 0},
		{-0.5, 3, -0.5},
		{0, -0.5, 0},
	})
}

// Convolve applies a convolution kernel to an RGBA image.
// Border pixels are handled by replicating edge values. Alpha is copied
// from the source pixel.
func Convolve(img *RGBAImage, kernel *Kernel) *RGBAImage {
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)

	halfKW := kernel.Width / 2
	halfKH := kernel.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float64

			for ky := 0; ky < kernel.Height; ky++ {
				for kx := 0; kx < kernel.Width; kx++ {
					sx := clampInt(x+kx-halfKW, 0, width-1)
					sy := clampInt(y+ky-halfKH, 0, height-1)

					c := img.RGBAAt(sx, sy)
					k := kernel.Values[ky][kx]

					sumR += float64(c.R) * k
					sumG += float64(c.G) * k
					sumB += float64(c.B) * k
				}
			}

			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = clampUint8(sumR)
			dst.Pix[i+1] = clampUint8(sumG)
			dst.Pix[i+2] = clampUint8(sumB)
			dst.Pix[i+3] = img.RGBAAt(x, y).A
		}
	}

	return dst
}

// Sharpen applies a mild sharpening filter to an RGBA image.
func Sharpen(img *RGBAImage) *RGBAImage {
	return Convolve(img, SharpeningKernel())
}

// clampInt clamps an integer to the given range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
