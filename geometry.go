package hexmap

import (
	"fmt"
	"strings"
)

// GeometryKind selects how the canonical triangular lattice is relabelled
// for display.
type GeometryKind uint8

const (
	// TriangleGeometry is the canonical labelling, translated by the origin.
	TriangleGeometry GeometryKind = iota

	// RectangleGeometry shears the lattice so columns pack into straight
	// rows, shifting one row for every two columns.
	RectangleGeometry

	// HerringboneGeometry turns the axes so that they meet at 120 degrees,
	// with the hx=hy axis running down the spine of the map.
	HerringboneGeometry
)

// String returns the geometry name.
func (k GeometryKind) String() string {
	switch k {
	case TriangleGeometry:
		return "triangle"
	case RectangleGeometry:
		return "rectangle"
	case HerringboneGeometry:
		return "herringbone"
	default:
		return "unknown"
	}
}

// ParseGeometryKind returns the kind named by s (case insensitive).
func ParseGeometryKind(s string) (GeometryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle":
		return TriangleGeometry, nil
	case "rectangle":
		return RectangleGeometry, nil
	case "herringbone", "vee":
		return HerringboneGeometry, nil
	default:
		return 0, fmt.Errorf("%w: geometry %q", ErrUnknownVariant, s)
	}
}

// Geometry maps between canonical lattice coordinates and the display
// coordinates a user sees on the map. Every geometry is a bijection:
//
//	g.ToGrid(g.ToDisplay(c)) == c
//	g.ToDisplay(g.ToGrid(c)) == c
//
// The zero value is a TriangleGeometry at the origin.
type Geometry struct {
	kind   GeometryKind
	origin HexVector
}

// NewGeometry creates a geometry of the given kind. origin is the display
// coordinate of canonical (0,0); herringbone ignores it.
func NewGeometry(kind GeometryKind, origin HexVector) (Geometry, error) {
	switch kind {
	case TriangleGeometry, RectangleGeometry, HerringboneGeometry:
		return Geometry{kind: kind, origin: origin}, nil
	default:
		return Geometry{}, fmt.Errorf("%w: geometry kind %d", ErrUnknownVariant, kind)
	}
}

// Kind returns the geometry kind.
func (g Geometry) Kind() GeometryKind { return g.kind }

// Origin returns the display coordinate of canonical (0,0).
func (g Geometry) Origin() HexVector { return g.origin }

// ToGrid returns the canonical lattice node under a display coordinate.
func (g Geometry) ToGrid(display HexVector) HexVector {
	switch g.kind {
	case RectangleGeometry:
		n := display.Sub(g.origin)
		return HexVector{HX: n.HX, HY: n.HY + floorDiv(n.HX, 2)}
	case HerringboneGeometry:
		return HexVector{HX: -display.HZ(), HY: display.HX}
	default:
		return display.Sub(g.origin)
	}
}

// ToDisplay returns the display coordinate of a canonical lattice node.
func (g Geometry) ToDisplay(grid HexVector) HexVector {
	switch g.kind {
	case RectangleGeometry:
		return g.origin.Add(HexVector{HX: grid.HX, HY: grid.HY - floorDiv(grid.HX, 2)})
	case HerringboneGeometry:
		return HexVector{HX: grid.HY, HY: grid.HZ()}
	default:
		return grid.Add(g.origin)
	}
}
