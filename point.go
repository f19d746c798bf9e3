package swfshape

import "github.com/open-flash/swf-renderer/internal/twips"

// Point is a location in twips (1/20 of a pixel), SWF's integer geometric
// unit. Equality between two Points is exact integer equality; the
// contour reconstructor depends on this (see internal/contour).
type Point struct {
	X, Y int32
}

// Pt is a convenience constructor for Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ToPixels converts a twips Point to pixel-space float coordinates.
func (p Point) ToPixels() (x, y float64) {
	return twips.ToPixels(p.X), twips.ToPixels(p.Y)
}
