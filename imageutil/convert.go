package imageutil

// Luminance returns the BT.601 luma of an RGB triple in the range
// [0, 255]: Y = 0.299*R + 0.587*G + 0.114*B.
// This matches the weights used by OpenCV's COLOR_BGR2GRAY.
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}
