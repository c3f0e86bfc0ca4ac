package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// NewCanvas returns a transparent square canvas of size x size pixels.
func NewCanvas(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// Point is a sub-pixel position in canvas coordinates.
type Point struct{ X, Y float64 }

// pixelCenter maps an integer pixel position to the center of that pixel.
func pixelCenter(x, y int) Point { return Point{X: float64(x) + 0.5, Y: float64(y) + 0.5} }

// pather is the subset of path building shared by the fill and stroke backends.
type pather interface {
	moveTo(p Point)
	lineTo(p Point)
	quadTo(ctrl, p Point)
	closePath()
}

// vectorPath feeds an x/image/vector rasterizer, used for fills.
type vectorPath struct{ z *vector.Rasterizer }

func (v vectorPath) moveTo(p Point) { v.z.MoveTo(float32(p.X), float32(p.Y)) }
func (v vectorPath) lineTo(p Point) { v.z.LineTo(float32(p.X), float32(p.Y)) }
func (v vectorPath) quadTo(c, p Point) {
	v.z.QuadTo(float32(c.X), float32(c.Y), float32(p.X), float32(p.Y))
}
func (v vectorPath) closePath() { v.z.ClosePath() }

// strokePath accumulates a freetype raster.Path, used for outlines.
type strokePath struct {
	path        raster.Path
	start, last fixed.Point26_6
}

func toFixed(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))}
}

func (s *strokePath) moveTo(p Point) {
	s.start = toFixed(p)
	s.last = s.start
	s.path.Start(s.start)
}

func (s *strokePath) lineTo(p Point) {
	s.last = toFixed(p)
	s.path.Add1(s.last)
}

func (s *strokePath) quadTo(c, p Point) {
	s.last = toFixed(p)
	s.path.Add2(toFixed(c), s.last)
}

// closePath skips the closing segment when the pen is already home; the
// stroker cannot normalize a zero-length segment.
func (s *strokePath) closePath() {
	if s.last != s.start {
		s.path.Add1(s.start)
		s.last = s.start
	}
}

// arc appends an elliptical arc from angle a0 to a1 (radians, clockwise in
// image space) as quadratic segments of at most 45 degrees. The pen must
// already be at the arc's start point.
func arc(p pather, center Point, rx, ry, a0, a1 float64) {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 4)))
	if n < 1 {
		n = 1
	}
	step := (a1 - a0) / float64(n)
	k := 1 / math.Cos(step/2)
	for i := 0; i < n; i++ {
		mid := a0 + step*(float64(i)+0.5)
		end := a0 + step*float64(i+1)
		ctrl := Point{X: center.X + rx*k*math.Cos(mid), Y: center.Y + ry*k*math.Sin(mid)}
		to := Point{X: center.X + rx*math.Cos(end), Y: center.Y + ry*math.Sin(end)}
		p.quadTo(ctrl, to)
	}
}

func ellipsePath(p pather, x0, y0, x1, y1 float64) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	center := Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
	rx, ry := (x1-x0)/2, (y1-y0)/2
	p.moveTo(Point{X: center.X + rx, Y: center.Y})
	arc(p, center, rx, ry, 0, 2*math.Pi)
	p.closePath()
}

func roundedRectPath(p pather, x0, y0, x1, y1, radius float64) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	radius = math.Max(0, math.Min(radius, math.Min(x1-x0, y1-y0)/2))
	if radius == 0 {
		p.moveTo(Point{X: x0, Y: y0})
		p.lineTo(Point{X: x1, Y: y0})
		p.lineTo(Point{X: x1, Y: y1})
		p.lineTo(Point{X: x0, Y: y1})
		p.closePath()
		return
	}
	p.moveTo(Point{X: x0 + radius, Y: y0})
	p.lineTo(Point{X: x1 - radius, Y: y0})
	arc(p, Point{X: x1 - radius, Y: y0 + radius}, radius, radius, -math.Pi/2, 0)
	p.lineTo(Point{X: x1, Y: y1 - radius})
	arc(p, Point{X: x1 - radius, Y: y1 - radius}, radius, radius, 0, math.Pi/2)
	p.lineTo(Point{X: x0 + radius, Y: y1})
	arc(p, Point{X: x0 + radius, Y: y1 - radius}, radius, radius, math.Pi/2, math.Pi)
	p.lineTo(Point{X: x0, Y: y0 + radius})
	arc(p, Point{X: x0 + radius, Y: y0 + radius}, radius, radius, math.Pi, 3*math.Pi/2)
	p.closePath()
}

func fill(dst *image.RGBA, c color.Color, build func(p pather)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	build(vectorPath{z: z})
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func stroke(dst *image.RGBA, c color.Color, width float64, cr raster.Capper, build func(p pather)) {
	if width <= 0 {
		return
	}
	sp := &strokePath{}
	build(sp)
	if len(sp.path) == 0 {
		return
	}
	b := dst.Bounds()
	r := raster.NewRasterizer(b.Dx(), b.Dy())
	r.UseNonZeroWinding = true
	raster.Stroke(r, sp.path, fixed.Int26_6(math.Round(width*64)), cr, nil)
	painter := raster.NewRGBAPainter(dst)
	painter.SetColor(c)
	r.Rasterize(painter)
}

// FillEllipse fills the ellipse inscribed in bounds.
func FillEllipse(dst *image.RGBA, bounds image.Rectangle, c color.Color) {
	fill(dst, c, func(p pather) {
		ellipsePath(p, float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Max.X), float64(bounds.Max.Y))
	})
}

// StrokeEllipse outlines the ellipse inscribed in bounds. The outline lies
// entirely inside bounds.
func StrokeEllipse(dst *image.RGBA, bounds image.Rectangle, width float64, c color.Color) {
	h := width / 2
	stroke(dst, c, width, nil, func(p pather) {
		ellipsePath(p, float64(bounds.Min.X)+h, float64(bounds.Min.Y)+h, float64(bounds.Max.X)-h, float64(bounds.Max.Y)-h)
	})
}

// FillRoundedRect fills bounds with corners rounded to radius.
func FillRoundedRect(dst *image.RGBA, bounds image.Rectangle, radius float64, c color.Color) {
	fill(dst, c, func(p pather) {
		roundedRectPath(p, float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Max.X), float64(bounds.Max.Y), radius)
	})
}

// StrokeRoundedRect outlines a rounded rectangle inside bounds.
func StrokeRoundedRect(dst *image.RGBA, bounds image.Rectangle, radius, width float64, c color.Color) {
	h := width / 2
	stroke(dst, c, width, nil, func(p pather) {
		roundedRectPath(p, float64(bounds.Min.X)+h, float64(bounds.Min.Y)+h, float64(bounds.Max.X)-h, float64(bounds.Max.Y)-h, radius-h)
	})
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(dst *image.RGBA, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	fill(dst, c, func(p pather) {
		p.moveTo(pts[0])
		for _, pt := range pts[1:] {
			p.lineTo(pt)
		}
		p.closePath()
	})
}

// StrokeLine draws a butt-capped segment from a to b.
func StrokeLine(dst *image.RGBA, a, b Point, width float64, c color.Color) {
	stroke(dst, c, width, raster.ButtCapper, func(p pather) {
		p.moveTo(a)
		p.lineTo(b)
	})
}
