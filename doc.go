// Package hexmap computes coordinates and canvas placement for hex maps.
//
// # Overview
//
// Every hex map is a triangular tiling. hexmap gives each node of the
// tiling a canonical integer coordinate, relabels those coordinates into
// the systems map users expect, enumerates the nodes of a map outline, and
// fits the result onto a drawing surface of a given size. It never draws:
// a renderer consumes tile centers and sizes and emits its own primitives.
//
// # Quick Start
//
//	import "github.com/gogpu/hexmap"
//
//	grid, _ := hexmap.NewGrid(hexmap.RectangleGrid, hexmap.Hex(6, 8))
//	geom, _ := hexmap.NewGeometry(hexmap.RectangleGeometry, hexmap.Origin)
//	layout, err := hexmap.NewLayout(hexmap.Pt(300, 300), grid, geom)
//	if err != nil {
//	    return err
//	}
//	for tile := range layout.Tiles() {
//	    draw(tile.Vertices(layout.Orientation()), tile.Center, tile.Display)
//	}
//
// # Coordinates
//
// A HexVector stores two axes, HX and HY. The third axis of the lattice is
// derived, HZ = HY - HX, so the three can never disagree.
//
// # Geometries
//
// A Geometry is a bijection between canonical coordinates and display
// coordinates:
//   - Triangle: canonical coordinates shifted by an origin
//   - Rectangle: columns sheared into straight rows
//   - Herringbone: axes meeting at 120 degrees
//
// # Grids
//
// A Grid enumerates the nodes of a map outline, either a rectangular
// block or concentric rings, maps each node onto the canonical lattice and
// places it in unscaled hexrun/hexrise units. A rectangle's stagger picks
// which column parity sits half a hex lower.
//
// # Layout
//
// A Layout solves the tile size that fits a grid onto a surface. Widths
// and heights are both checked and the tighter constraint wins; leftover
// space becomes padding that centers the map.
//
// # Concurrency
//
// Every type in the package is an immutable value. Layouts, grids and
// geometries may be shared between goroutines without locking.
package hexmap

// Version is the current version of the library.
const Version = "0.1.0"
