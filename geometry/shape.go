package geometry

// Shape is either a *Polygon or a Circle
type Shape interface {
	Perimeter() float64
	isShape()
}

func (*Polygon) isShape() {}
func (Circle) isShape()   {}

// PolygonShape lifts a polygon into a Shape. The shape holds its own copy of
// the vertices, so later changes to pg do not affect it.
func PolygonShape(pg *Polygon) Shape {
	if pg == nil {
		return NewPolygon()
	}
	return pg.clone()
}

// CircleShape lifts a circle into a Shape
func CircleShape(c Circle) Shape {
	return c
}

// Kind names the variant held by s
func Kind(s Shape) string {
	switch s.(type) {
	case *Polygon:
		return "polygon"
	case Circle:
		return "circle"
	default:
		panic("geometry: unknown shape variant")
	}
}
