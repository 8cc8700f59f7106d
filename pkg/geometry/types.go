// Package geometry provides basic geometric types used throughout the application.
package geometry

import "math"

// Point2D represents a 2D point with floating-point coordinates.
// Pointer events arrive as floats; the ink canvas rounds to PointInt.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Round converts to the nearest integer point.
func (p Point2D) Round() PointInt {
	return PointInt{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}
