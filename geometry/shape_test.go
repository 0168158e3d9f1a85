package geometry

import "testing"

func TestCirclePerimeter(t *testing.T) {
	c := NewCircle(NewPoint(10, 20), 5)

	if got := roundTwoDigits(c.Perimeter()); got != 31.42 {
		t.Errorf("Expected perimeter 31.42, got %v", got)
	}
	if got := NewCircle(Point{}, 0).Perimeter(); got != 0 {
		t.Errorf("Expected zero radius perimeter 0, got %v", got)
	}
	if got := roundTwoDigits(NewCircle(Point{}, -5).Perimeter()); got != -31.42 {
		t.Errorf("Expected negative radius perimeter -31.42, got %v", got)
	}
}

func TestShapes(t *testing.T) {
	pg := NewPolygon()
	pg.AddPoint(NewPoint(12, 13))
	pg.AddPoint(NewPoint(17, 11))
	pg.AddPoint(NewPoint(16, 16))

	shapes := []Shape{
		PolygonShape(pg),
		CircleShape(NewCircle(NewPoint(10, 20), 5)),
	}

	want := []struct {
		kind      string
		perimeter float64
	}{
		{"polygon", 15.48},
		{"circle", 31.42},
	}

	for i, s := range shapes {
		if got := Kind(s); got != want[i].kind {
			t.Errorf("shape %d: expected kind %s, got %s", i, want[i].kind, got)
		}
		if got := roundTwoDigits(s.Perimeter()); got != want[i].perimeter {
			t.Errorf("shape %d: expected perimeter %v, got %v", i, want[i].perimeter, got)
		}
	}
}

func TestPolygonShapeOwnsVertices(t *testing.T) {
	pg := NewPolygon(NewPoint(0, 0), NewPoint(3, 4))
	s := PolygonShape(pg)

	pg.AddPoint(NewPoint(100, 100))

	if got := s.Perimeter(); got != 10 {
		t.Errorf("Expected shape perimeter 10 after source changed, got %v", got)
	}
	if got := PolygonShape(nil).Perimeter(); got != 0 {
		t.Errorf("Expected nil polygon shape perimeter 0, got %v", got)
	}
}
