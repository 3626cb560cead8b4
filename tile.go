package hexmap

import (
	"fmt"
	"strings"
)

// Edge identifies which border of a wrapped map a tile lies on.
// Border tiles are drawn as half hexes.
type Edge uint8

const (
	// EdgeInterior is a full hex.
	EdgeInterior Edge = iota
	// EdgeTop keeps the upper half of the hex outline.
	EdgeTop
	// EdgeBottom keeps the lower half of the hex outline.
	EdgeBottom
	// EdgeLeft keeps the right half of the hex, cut along the left border.
	EdgeLeft
	// EdgeRight keeps the left half of the hex, cut along the right border.
	EdgeRight
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeInterior:
		return "interior"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Orientation selects whether the map's columns run down the page
// (vertical) or across it (horizontal).
type Orientation uint8

const (
	// Vertical lays columns top to bottom. This is the default.
	Vertical Orientation = iota
	// Horizontal lays the map out transposed: columns run left to right.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation returns the orientation named by s (case insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: orientation %q", ErrUnknownVariant, s)
	}
}

// Outline vertices in units of hexrun and hexrise. The interior outline is
// closed: the last vertex repeats the first.
var (
	interiorOutline = [7]Point{
		{-2, 0}, {-1, -1}, {1, -1}, {2, 0}, {1, 1}, {-1, 1}, {-2, 0},
	}
	leftOutline = [5]Point{
		{0, -1}, {1, -1}, {2, 0}, {1, 1}, {0, 1},
	}
	rightOutline = [5]Point{
		{0, -1}, {-1, -1}, {-2, 0}, {-1, 1}, {0, 1},
	}
)

// outline returns a fresh copy of the unit outline for e.
func outline(e Edge) []Point {
	switch e {
	case EdgeTop:
		return append([]Point(nil), interiorOutline[0:4]...)
	case EdgeBottom:
		return append([]Point(nil), interiorOutline[3:7]...)
	case EdgeLeft:
		return append([]Point(nil), leftOutline[:]...)
	case EdgeRight:
		return append([]Point(nil), rightOutline[:]...)
	default:
		return append([]Point(nil), interiorOutline[:]...)
	}
}

// Tile is one placed hex: its grid node and display label, its center and
// half-size on the canvas, and the border it sits on.
type Tile struct {
	Hex     HexVector // grid node
	Display HexVector // label in the layout's geometry
	Center  Point
	Size    Point // hexrun, hexrise
	Edge    Edge
}

// Vertices returns the outline of the tile in canvas units as an open or
// closed polyline, depending on the edge. For horizontal maps the outline
// is transposed before it is moved to the tile center.
func (t Tile) Vertices(o Orientation) []Point {
	pts := outline(t.Edge)
	for i, p := range pts {
		p = p.Scale(t.Size)
		if o == Horizontal {
			p = p.Swap()
		}
		pts[i] = p.Add(t.Center)
	}
	return pts
}

// LabelOffset returns where the tile's label sits relative to its center:
// below center on full and top/bottom hexes, toward the map on side halves.
func (t Tile) LabelOffset() Point {
	switch t.Edge {
	case EdgeLeft:
		return Point{X: t.Size.X}
	case EdgeRight:
		return Point{X: -t.Size.X}
	default:
		return Point{Y: t.Size.Y * 0.75}
	}
}

// LabelCenter returns the anchor point of the tile's label.
func (t Tile) LabelCenter() Point {
	return t.Center.Add(t.LabelOffset())
}

// ShowsDot reports whether a center dot is drawn for the tile. Side halves
// have their center on the map border and get none.
func (t Tile) ShowsDot() bool {
	return t.Edge != EdgeLeft && t.Edge != EdgeRight
}
