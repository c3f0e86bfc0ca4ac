package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Lerp interpolates a channel from a to b at t, truncating toward zero.
func Lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}

// GradientAt returns the vertical gradient color for row y of a canvas
// that is height rows tall. A single-row canvas gets the top color.
func GradientAt(top, bottom color.NRGBA, y, height int) color.NRGBA {
	if height < 2 {
		return top
	}
	t := float64(y) / float64(height-1)
	return color.NRGBA{
		R: Lerp(top.R, bottom.R, t),
		G: Lerp(top.G, bottom.G, t),
		B: Lerp(top.B, bottom.B, t),
		A: 0xFF,
	}
}

// DrawGradient fills every row of dst with its opaque gradient color.
func DrawGradient(dst *image.RGBA, top, bottom color.NRGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		row := image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1)
		draw.Draw(dst, row, &image.Uniform{C: GradientAt(top, bottom, y, h)}, image.Point{}, draw.Src)
	}
}
