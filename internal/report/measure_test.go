package report

import (
	"math"
	"testing"

	"github.com/rail44/drills/internal/shapefile"
)

func TestCheck(t *testing.T) {
	res := Check(" 4263 9826 4026 9299 ")
	if !res.Valid {
		t.Error("Expected number to be valid")
	}
	if res.Normalized != "4263982640269299" {
		t.Errorf("Expected normalized '4263982640269299', got '%s'", res.Normalized)
	}

	if Check("4223 9826 4026 9299").Valid {
		t.Error("Expected flipped digit to be invalid")
	}
}

func TestMeasure(t *testing.T) {
	doc, err := shapefile.Parse([]byte(`
shapes:
  - name: triangle
    polygon: [[12, 13], [17, 11], [16, 16]]
  - name: wheel
    circle: {center: [10, 20], radius: 5}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	results := Measure("shapes.yaml", doc)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if results[0].Name != "triangle" || results[0].Kind != "polygon" {
		t.Errorf("Expected triangle polygon, got %+v", results[0])
	}
	if results[1].Name != "wheel" || results[1].Kind != "circle" {
		t.Errorf("Expected wheel circle, got %+v", results[1])
	}
	if got := math.Round(Total(results)*100) / 100; got != 46.9 {
		t.Errorf("Expected total 46.9, got %v", got)
	}
	for _, r := range results {
		if r.Source != "shapes.yaml" {
			t.Errorf("Expected source 'shapes.yaml', got '%s'", r.Source)
		}
	}
}
