package report

import (
	"github.com/rail44/drills/geometry"
	"github.com/rail44/drills/internal/shapefile"
	"github.com/rail44/drills/luhn"
)

// Check validates one number
func Check(input string) LuhnResult {
	return LuhnResult{
		Input:      input,
		Normalized: luhn.Normalize(input),
		Valid:      luhn.Valid(input),
	}
}

// Measure computes the perimeter of every shape in doc, in document order
func Measure(source string, doc *shapefile.Document) []PerimeterResult {
	results := make([]PerimeterResult, 0, len(doc.Shapes))
	for _, s := range doc.Shapes {
		results = append(results, PerimeterResult{
			Source:    source,
			Name:      s.Name,
			Kind:      geometry.Kind(s.Shape),
			Perimeter: s.Shape.Perimeter(),
		})
	}
	return results
}
