package geometry

import "math"

// Circle is a center point and an integer radius.
// The radius is not validated; a negative radius gives a negative perimeter.
type Circle struct {
	Center Point
	Radius int
}

// NewCircle creates a Circle
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// Perimeter returns 2πr
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * float64(c.Radius)
}
