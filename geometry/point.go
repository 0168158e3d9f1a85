package geometry

import (
	"fmt"
	"math"
)

// Point represents a point in 2-D integer space
type Point struct {
	X, Y int
}

// NewPoint creates a Point. Any coordinates are accepted.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Magnitude returns the Euclidean distance from the origin
func (p Point) Magnitude() float64 {
	x, y := float64(p.X), float64(p.Y)
	return math.Sqrt(x*x + y*y)
}

// Dist returns the Euclidean distance between p and other
func (p Point) Dist(other Point) float64 {
	// Squares of full-range int coordinates overflow int
	dx := float64(other.X) - float64(p.X)
	dy := float64(other.Y) - float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the component-wise sum of p and other
func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

// Equal reports whether both coordinates match exactly
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
