package hexmap

import (
	"iter"
	"math"
	"slices"

	"github.com/gogpu/hexmap/internal/parallel"
)

// hexRatio is cos(30°), the ratio of a hex's height to its width.
// The truncated value is kept so that output matches existing maps.
const hexRatio = 0.8660254

// parallelThreshold is the tile count above which Centers fans out.
const parallelThreshold = 4096

// Layout fits a grid onto a drawing surface and places each tile on it.
//
// All values are computed once by NewLayout. A Layout is immutable and safe
// for concurrent use.
//
// Sizes are solved in the vertical frame: for a horizontal map the surface
// is transposed first, and Padding, Footprint, TileOrigin and TileCenter are
// transposed back. TileSize and TileStep describe a single hex and stay in
// the hex's own frame.
type Layout struct {
	size  Point
	grid  Grid
	geom  Geometry
	opts  layoutOptions
	cols  int
	rows  int
	frame Point // size in the vertical frame

	stroke    float64
	tile      Point
	footprint Point
	padding   Point
	origin    Point
}

// NewLayout fits grid onto a surface of the given size.
//
// The tile half-width (hexrun) is first solved from the surface width. If
// the resulting hexes would make the map too tall, the surface height is
// binding instead and hexrun is derived from the height. The tighter of
// the two constraints always wins.
//
// NewLayout returns an error wrapping ErrDegenerateLayout when the surface
// or the grid has no area, the stroke would leave no room for tiles, or
// wrap is asked of anything but a rectangle of two or more columns.
func NewLayout(size Point, grid Grid, geom Geometry, opts ...LayoutOption) (*Layout, error) {
	o := defaultLayoutOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !positive(size.X) {
		return nil, degenerate("width", size.X)
	}
	if !positive(size.Y) {
		return nil, degenerate("height", size.Y)
	}
	dims := grid.Dimensions()
	if dims.HX <= 0 {
		return nil, degenerate("columns", dims.HX)
	}
	if dims.HY <= 0 {
		return nil, degenerate("rows", dims.HY)
	}
	if o.wrap && grid.Kind() != RectangleGrid {
		return nil, degenerate("wrap", grid.Kind())
	}
	if o.wrap && dims.HX < 2 {
		return nil, degenerate("columns", dims.HX)
	}
	if !(o.strokePercent >= 0) || math.IsInf(o.strokePercent, 0) {
		return nil, degenerate("stroke percent", o.strokePercent)
	}

	l := &Layout{
		size:  size,
		grid:  grid.withSawtooth(o.sawtooth),
		geom:  geom,
		opts:  o,
		cols:  dims.HX,
		rows:  dims.HY,
		frame: size,
	}
	if o.orientation == Horizontal {
		l.frame = size.Swap()
	}

	if o.orientation == Horizontal {
		l.stroke = (o.strokePercent / float64(l.rows)) * l.frame.Y
	} else {
		l.stroke = (o.strokePercent / float64(l.cols)) * l.frame.X
	}
	if l.stroke >= l.frame.X || l.stroke >= l.frame.Y {
		return nil, degenerate("stroke width", l.stroke)
	}

	l.fit()
	l.place()
	return l, nil
}

// fit solves hexrun and hexrise, then the footprint and padding.
func (l *Layout) fit() {
	w, h := l.frame.X, l.frame.Y
	heightUnits := float64(2*l.rows + 1)

	var run float64
	if l.opts.wrap {
		run = w / float64(3*(l.cols-1))
	} else {
		run = (w - l.stroke) / float64(3*l.cols+1)
	}
	rise := run * 2 * hexRatio

	binding := "width"
	if rise*heightUnits > h-l.stroke {
		rise = (h - l.stroke) / heightUnits
		run = rise / (2 * hexRatio)
		binding = "height"
	}
	l.tile = Point{X: run, Y: rise}

	if l.opts.wrap {
		l.footprint = Point{X: run * float64(3*(l.cols-1)), Y: rise * heightUnits}
	} else {
		l.footprint = Point{X: run * float64(3*l.cols+1), Y: rise * heightUnits}
	}
	l.padding = l.frame.Sub(l.footprint).Div(2)

	Logger().Debug("layout fitted",
		"grid", l.grid.Kind(),
		"cols", l.cols,
		"rows", l.rows,
		"binding", binding,
		"hexrun", run,
		"hexrise", rise,
		"stroke", l.stroke)
}

// place finds the canvas position of RectLoc (0,0).
func (l *Layout) place() {
	lo, _ := l.grid.Bounds()
	inset := Point{X: 2, Y: 1}.Sub(lo)
	if l.opts.wrap {
		inset.X = -lo.X
	}
	half := l.stroke / 2
	l.origin = Point{X: half, Y: half}.Add(inset.Scale(l.tile))
	if l.opts.pad {
		l.origin = l.origin.Add(l.padding)
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// toCanvas transposes a vertical-frame point for horizontal maps.
func (l *Layout) toCanvas(p Point) Point {
	if l.opts.orientation == Horizontal {
		return p.Swap()
	}
	return p
}

// Size returns the drawing surface size.
func (l *Layout) Size() Point { return l.size }

// Grid returns the grid being laid out, with the layout's stagger applied.
func (l *Layout) Grid() Grid { return l.grid }

// Geometry returns the geometry used to label tiles.
func (l *Layout) Geometry() Geometry { return l.geom }

// Orientation returns the map orientation.
func (l *Layout) Orientation() Orientation { return l.opts.orientation }

// Wrap reports whether the layout was built for horizontal wrap-around.
func (l *Layout) Wrap() bool { return l.opts.wrap }

// StrokeWidth returns the width of tile borders and center dots.
func (l *Layout) StrokeWidth() float64 { return l.stroke }

// TileSize returns hexrun and hexrise: half the side length and half the
// height of one hex.
func (l *Layout) TileSize() Point { return l.tile }

// TileStep returns the distance between adjacent tile centers along a
// column (X) and along a row (Y).
func (l *Layout) TileStep() Point { return l.tile.Scale(latticeStep) }

// Footprint returns the surface area the grid occupies.
func (l *Layout) Footprint() Point { return l.toCanvas(l.footprint) }

// Padding returns the unused surface on each side of the grid.
// It is never negative.
func (l *Layout) Padding() Point { return l.toCanvas(l.padding) }

// TileOrigin returns the canvas position that RectLoc (0,0) maps to.
func (l *Layout) TileOrigin() Point { return l.toCanvas(l.origin) }

// TileCenter returns the canvas position of the center of the tile at a
// grid node.
func (l *Layout) TileCenter(h HexVector) Point {
	return l.toCanvas(l.origin.Add(l.grid.RectLoc(h).Scale(l.tile)))
}

// Display returns the label of grid node h in the layout's geometry.
func (l *Layout) Display(h HexVector) HexVector {
	return l.geom.ToDisplay(l.grid.Canonical(h))
}

// DisplayCenter returns the canvas position of the tile labelled d in the
// layout's geometry.
func (l *Layout) DisplayCenter(d HexVector) Point {
	return l.TileCenter(l.grid.Node(l.geom.ToGrid(d)))
}

// Tile returns the placed tile at a grid node.
func (l *Layout) Tile(h HexVector) Tile {
	return Tile{
		Hex:     h,
		Display: l.Display(h),
		Center:  l.TileCenter(h),
		Size:    l.tile,
		Edge:    l.grid.Edge(h, l.opts.wrap),
	}
}

// Tiles returns every tile of the grid in Grid.Hexes order.
func (l *Layout) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for h := range l.grid.Hexes() {
			if !yield(l.Tile(h)) {
				return
			}
		}
	}
}

// Centers returns the center of every tile, indexed like Grid.Hexes.
// Large grids are computed on several goroutines.
func (l *Layout) Centers() []Point {
	hexes := slices.Collect(l.grid.Hexes())
	centers := make([]Point, len(hexes))

	fill := func(s parallel.Span) {
		for i := s.Lo; i < s.Hi; i++ {
			centers[i] = l.TileCenter(hexes[i])
		}
	}
	if len(hexes) < parallelThreshold {
		fill(parallel.Span{Lo: 0, Hi: len(hexes)})
		return centers
	}

	pool := parallel.NewWorkerPool(l.opts.workers)
	defer pool.Close()
	pool.ForEach(len(hexes), fill)
	return centers
}
