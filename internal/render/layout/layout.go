package layout

import "image"

// Box returns the rectangle covering the pixels x0..x1 and y0..y1 inclusive.
// Corners may be given in either order.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rect(x0, y0, x1+1, y1+1)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Circle returns the bounding box of a circle of radiusPx pixels around center.
func Circle(center image.Point, radiusPx int) image.Rectangle {
	if radiusPx < 0 {
		radiusPx = -radiusPx
	}
	return Box(center.X-radiusPx, center.Y-radiusPx, center.X+radiusPx, center.Y+radiusPx)
}

// MirrorX reflects rect across the pixel column axisX.
func MirrorX(rect image.Rectangle, axisX int) image.Rectangle {
	rect = Normalize(rect)
	return Box(2*axisX-(rect.Max.X-1), rect.Min.Y, 2*axisX-rect.Min.X, rect.Max.Y-1)
}

// Within returns the inclusive box (x0,y0)-(x1,y1) measured from the top-left of rect.
func Within(rect image.Rectangle, x0, y0, x1, y1 int) image.Rectangle {
	rect = Normalize(rect)
	return Box(rect.Min.X+x0, rect.Min.Y+y0, rect.Min.X+x1, rect.Min.Y+y1)
}
