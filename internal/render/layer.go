package render

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// NewLayer returns a transparent layer matching dst's bounds.
func NewLayer(dst *image.RGBA) *image.RGBA {
	return image.NewRGBA(dst.Bounds())
}

// CompositeBlurred applies a Gaussian blur of the given sigma to layer and
// alpha-composites the result over dst. Pixels already on dst are not blurred.
func CompositeBlurred(dst *image.RGBA, layer image.Image, sigma float64) {
	blurred := imaging.Blur(layer, sigma)
	draw.Draw(dst, dst.Bounds(), blurred, blurred.Bounds().Min, draw.Over)
}
