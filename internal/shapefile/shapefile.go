// Package shapefile reads YAML documents describing named shapes.
//
//	shapes:
//	  - name: triangle
//	    polygon: [[12, 13], [17, 11], [16, 16]]
//	  - name: wheel
//	    circle: {center: [10, 20], radius: 5}
package shapefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rail44/drills/geometry"
)

// ErrInvalidShape is wrapped by every validation error
var ErrInvalidShape = errors.New("invalid shape")

// Named is a shape together with its name in the document
type Named struct {
	Name  string
	Shape geometry.Shape
}

// Document is a decoded shape file
type Document struct {
	Shapes []Named
}

type document struct {
	Shapes []entry `yaml:"shapes"`
}

type entry struct {
	Name    string   `yaml:"name"`
	Polygon *[][]int `yaml:"polygon"`
	Circle  *circle  `yaml:"circle"`
}

type circle struct {
	Center []int `yaml:"center"`
	Radius *int  `yaml:"radius"`
}

// Load reads and decodes the document at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document held in memory
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a document from r. Unknown keys are rejected and an empty
// input yields an empty document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw document
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode shapes: %w", err)
	}

	doc := &Document{Shapes: make([]Named, 0, len(raw.Shapes))}
	for i, e := range raw.Shapes {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("shape-%d", i+1)
		}

		shape, err := e.shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i+1, name, err)
		}
		doc.Shapes = append(doc.Shapes, Named{Name: name, Shape: shape})
	}
	return doc, nil
}

func (e entry) shape() (geometry.Shape, error) {
	switch {
	case e.Polygon != nil && e.Circle != nil:
		return nil, fmt.Errorf("%w: both polygon and circle given", ErrInvalidShape)
	case e.Polygon != nil:
		pg := geometry.NewPolygon()
		for j, coords := range *e.Polygon {
			p, err := point(coords)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", j+1, err)
			}
			pg.AddPoint(p)
		}
		return pg, nil
	case e.Circle != nil:
		center, err := point(e.Circle.Center)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		if e.Circle.Radius == nil {
			return nil, fmt.Errorf("%w: circle has no radius", ErrInvalidShape)
		}
		return geometry.CircleShape(geometry.NewCircle(center, *e.Circle.Radius)), nil
	default:
		return nil, fmt.Errorf("%w: neither polygon nor circle given", ErrInvalidShape)
	}
}

func point(coords []int) (geometry.Point, error) {
	if len(coords) != 2 {
		return geometry.Point{}, fmt.Errorf("%w: point needs 2 coordinates, got %d", ErrInvalidShape, len(coords))
	}
	return geometry.NewPoint(coords[0], coords[1]), nil
}
