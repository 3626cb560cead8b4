package hexmap

import (
	"fmt"
	"iter"
	"strings"
)

// GridKind selects the outline of a map.
type GridKind uint8

const (
	// RectangleGrid is a block of columns and rows.
	RectangleGrid GridKind = iota

	// RadialGrid is a set of concentric rings around the origin.
	RadialGrid
)

// String returns the grid name.
func (k GridKind) String() string {
	switch k {
	case RectangleGrid:
		return "rectangle"
	case RadialGrid:
		return "radial"
	default:
		return "unknown"
	}
}

// ParseGridKind returns the kind named by s (case insensitive).
func ParseGridKind(s string) (GridKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle":
		return RectangleGrid, nil
	case "radial":
		return RadialGrid, nil
	default:
		return 0, fmt.Errorf("%w: grid %q", ErrUnknownVariant, s)
	}
}

// Placement units between adjacent hexes, in multiples of hexrun and hexrise.
var latticeStep = Point{X: 3, Y: 2}

// Grid enumerates the nodes that make up a map.
//
// For a RectangleGrid, Size holds the column and row counts. For a
// RadialGrid, the ring radius is max(|Size.HX|, |Size.HY|).
//
// Rectangle nodes are block coordinates: column hx holds rows
// hx%2 .. hx%2+rows-1. Canonical maps them onto the lattice, and the
// stagger decides which column parity sits half a hex lower. Radial
// nodes are canonical lattice nodes already.
type Grid struct {
	kind GridKind
	size HexVector

	// oddDown drops odd columns instead of even ones.
	oddDown bool
}

// NewGrid creates a grid of the given kind and size.
// A rectangle needs at least one column and one row. The first column of
// a new rectangle sits half a hex down (sawtooth stagger).
func NewGrid(kind GridKind, size HexVector) (Grid, error) {
	switch kind {
	case RectangleGrid:
		if size.HX <= 0 {
			return Grid{}, degenerate("columns", size.HX)
		}
		if size.HY <= 0 {
			return Grid{}, degenerate("rows", size.HY)
		}
	case RadialGrid:
	default:
		return Grid{}, fmt.Errorf("%w: grid kind %d", ErrUnknownVariant, kind)
	}
	return Grid{kind: kind, size: size}, nil
}

// withSawtooth returns g with the given stagger. Radial grids are unchanged.
func (g Grid) withSawtooth(on bool) Grid {
	if g.kind == RectangleGrid {
		g.oddDown = !on
	}
	return g
}

// Sawtooth reports whether even columns, the first one included, sit half
// a hex below odd ones. Always false for radial grids.
func (g Grid) Sawtooth() bool {
	return g.kind == RectangleGrid && !g.oddDown
}

// Kind returns the grid kind.
func (g Grid) Kind() GridKind { return g.kind }

// Size returns the size vector the grid was created with.
func (g Grid) Size() HexVector { return g.size }

// Radius returns the ring count of a radial grid. For a rectangle it is
// computed the same way from the size vector.
func (g Grid) Radius() int {
	return max(abs(g.size.HX), abs(g.size.HY))
}

// Dimensions returns the number of columns and rows the grid occupies.
// A radial grid of radius r spans 2r+1 of each.
func (g Grid) Dimensions() HexVector {
	if g.kind == RadialGrid {
		d := 2*g.Radius() + 1
		return HexVector{HX: d, HY: d}
	}
	return g.size
}

// Len returns the number of hexes Hexes yields.
func (g Grid) Len() int {
	if g.kind == RadialGrid {
		r := g.Radius()
		return 3*r*(r+1) + 1
	}
	return g.size.HX * g.size.HY
}

// Hexes returns the nodes of the grid. The sequence is finite and may be
// iterated any number of times.
//
// A rectangle is produced column by column; odd columns start one row
// down. A radial grid is produced ring by ring from the center. Within a
// ring the walk steps along one edge and emits each step in all six
// hextants before taking the next step.
func (g Grid) Hexes() iter.Seq[HexVector] {
	if g.kind == RadialGrid {
		return g.rings()
	}
	return g.block()
}

func (g Grid) block() iter.Seq[HexVector] {
	return func(yield func(HexVector) bool) {
		for hx := range g.size.HX {
			start := hx % 2
			for hy := start; hy < start+g.size.HY; hy++ {
				if !yield(HexVector{HX: hx, HY: hy}) {
					return
				}
			}
		}
	}
}

func (g Grid) rings() iter.Seq[HexVector] {
	radius := g.Radius()
	return func(yield func(HexVector) bool) {
		if !yield(Origin) {
			return
		}
		for ring := 1; ring <= radius; ring++ {
			for step := range ring {
				h := HexVector{HX: step, HY: -ring + step}
				for hextant := range 6 {
					if !yield(h.Rotate(hextant)) {
						return
					}
				}
			}
		}
	}
}

// Column returns the nodes of the grid in column hx, top to bottom.
func (g Grid) Column(hx int) iter.Seq[HexVector] {
	var lo, hi int
	switch g.kind {
	case RadialGrid:
		r := g.Radius()
		lo, hi = -r, r
		if hx > 0 {
			lo = -r + hx
		} else {
			hi = r + hx
		}
		if abs(hx) > r {
			lo, hi = 0, -1
		}
	default:
		lo, hi = 0, -1
		if hx >= 0 && hx < g.size.HX {
			lo = hx % 2
			hi = lo + g.size.HY - 1
		}
	}
	return func(yield func(HexVector) bool) {
		for hy := lo; hy <= hi; hy++ {
			if !yield(HexVector{HX: hx, HY: hy}) {
				return
			}
		}
	}
}

// Contains reports whether h is one of the grid's nodes.
func (g Grid) Contains(h HexVector) bool {
	if g.kind == RadialGrid {
		return h.Length() <= g.Radius()
	}
	if h.HX < 0 || h.HX >= g.size.HX {
		return false
	}
	start := h.HX % 2
	return h.HY >= start && h.HY < start+g.size.HY
}

// Canonical returns the lattice node under grid node h. Rectangle rows
// stay straight in block coordinates, so every column is sheared back by
// half its index; the stagger picks whether the half rounds down or up.
func (g Grid) Canonical(h HexVector) HexVector {
	if g.kind == RadialGrid {
		return h
	}
	row := h.HY - mod(h.HX, 2)
	return HexVector{HX: h.HX, HY: row + floorDiv(h.HX+g.shear(), 2)}
}

// Node is the inverse of Canonical.
func (g Grid) Node(c HexVector) HexVector {
	if g.kind == RadialGrid {
		return c
	}
	row := c.HY - floorDiv(c.HX+g.shear(), 2)
	return HexVector{HX: c.HX, HY: row + mod(c.HX, 2)}
}

func (g Grid) shear() int {
	if g.oddDown {
		return 1
	}
	return 0
}

// down reports whether rectangle column hx sits half a row lower.
func (g Grid) down(hx int) bool {
	return (mod(hx, 2) == 1) == g.oddDown
}

// RectLoc places a node within the grid's bounding rectangle, in units of
// hexrun and hexrise, before any scaling to the canvas.
//
// A rectangle column is 3 units wide and a row 2 units tall, and dropped
// columns add one more unit. A radial grid puts its origin at the center
// of a (6r-2)x(4r-2) rectangle.
func (g Grid) RectLoc(h HexVector) Point {
	if g.kind == RadialGrid {
		r := float64(g.Radius())
		loc := Point{X: float64(h.HX), Y: float64(h.HY)}.Scale(latticeStep)
		return Point{X: 3*r - 1, Y: 2*r - 1}.Add(loc)
	}
	y := 2 * (h.HY - mod(h.HX, 2))
	if g.down(h.HX) {
		y++
	}
	return Point{X: 3 * float64(h.HX), Y: float64(y)}
}

// Bounds returns the smallest and largest RectLoc over all nodes.
func (g Grid) Bounds() (lo, hi Point) {
	if g.kind == RadialGrid {
		r := float64(g.Radius())
		return Point{X: -1, Y: -1}, Point{X: 6*r - 1, Y: 4*r - 1}
	}
	cols, rows := g.size.HX, g.size.HY
	if cols <= 0 || rows <= 0 {
		return Point{}, Point{}
	}
	hi = Point{X: 3 * float64(cols-1), Y: 2 * float64(rows-1)}
	if cols > 1 || g.down(0) {
		hi.Y++
	}
	if cols == 1 && g.down(0) {
		lo.Y = 1
	}
	return lo, hi
}

// Edge reports which border of a wrapped rectangle h lies on. Wrapped
// maps draw half hexes along their borders. Unwrapped maps and radial
// grids have only interior hexes.
func (g Grid) Edge(h HexVector, wrap bool) Edge {
	if !wrap || g.kind != RectangleGrid {
		return EdgeInterior
	}
	switch {
	case h.HX == 0:
		return EdgeLeft
	case h.HX == g.size.HX-1:
		return EdgeRight
	}
	row := h.HY - mod(h.HX, 2)
	switch {
	case row == 0:
		return EdgeTop
	case row == g.size.HY-1:
		return EdgeBottom
	}
	return EdgeInterior
}
