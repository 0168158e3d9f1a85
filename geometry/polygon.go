package geometry

import (
	"iter"
	"slices"
)

// Polygon is an ordered vertex sequence. The boundary runs through the
// vertices in insertion order and closes from the last back to the first.
type Polygon struct {
	points []Point
}

// NewPolygon creates a polygon from the given vertices, copying them
func NewPolygon(points ...Point) *Polygon {
	return &Polygon{points: slices.Clone(points)}
}

// AddPoint appends a vertex
func (pg *Polygon) AddPoint(p Point) {
	pg.points = append(pg.points, p)
}

// Len returns the number of vertices
func (pg *Polygon) Len() int {
	return len(pg.points)
}

// LeftMostPoint returns the vertex with the smallest X.
// Ties go to the earliest vertex. ok is false for an empty polygon.
func (pg *Polygon) LeftMostPoint() (p Point, ok bool) {
	if len(pg.points) == 0 {
		return Point{}, false
	}

	left := pg.points[0]
	for _, v := range pg.points[1:] {
		if v.X < left.X {
			left = v
		}
	}
	return left, true
}

// Points iterates over the vertices in insertion order
func (pg *Polygon) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range pg.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Perimeter returns the length of the closed boundary, or 0 when empty
func (pg *Polygon) Perimeter() float64 {
	n := len(pg.points)
	if n == 0 {
		return 0
	}

	var sum float64
	for i, p := range pg.points {
		sum += p.Dist(pg.points[(i+1)%n])
	}
	return sum
}

func (pg *Polygon) clone() *Polygon {
	return NewPolygon(pg.points...)
}
