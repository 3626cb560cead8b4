package hexmap

// LayoutOption configures a Layout during creation.
//
// Example:
//
//	// Default: vertical, 5% stroke, centered on the page
//	l, err := hexmap.NewLayout(hexmap.Pt(300, 300), grid, geom)
//
//	// Transposed map with thinner lines
//	l, err := hexmap.NewLayout(size, grid, geom,
//	    hexmap.WithOrientation(hexmap.Horizontal),
//	    hexmap.WithStrokePercent(0.02))
type LayoutOption func(*layoutOptions)

// layoutOptions holds optional configuration for Layout creation.
type layoutOptions struct {
	orientation   Orientation
	strokePercent float64
	pad           bool
	wrap          bool
	sawtooth      bool
	workers       int
}

// DefaultStrokePercent is the stroke width, as a fraction of one column,
// used when WithStrokePercent is not given.
const DefaultStrokePercent = 0.05

// defaultLayoutOptions returns the default layout options.
func defaultLayoutOptions() layoutOptions {
	return layoutOptions{
		orientation:   Vertical,
		strokePercent: DefaultStrokePercent,
		pad:           true,
		sawtooth:      true,
		workers:       0, // GOMAXPROCS
	}
}

// WithOrientation sets whether columns run down (Vertical) or across
// (Horizontal) the drawing surface.
func WithOrientation(o Orientation) LayoutOption {
	return func(opts *layoutOptions) {
		opts.orientation = o
	}
}

// WithStrokePercent sets the line width as a fraction of the canvas width
// divided by the column count (row count for horizontal maps).
// The stroke therefore stays in proportion to a tile as the map grows.
func WithStrokePercent(p float64) LayoutOption {
	return func(opts *layoutOptions) {
		opts.strokePercent = p
	}
}

// WithPadding controls whether leftover surface space is split evenly on
// both sides to center the grid. When disabled the grid hugs the top-left
// corner.
func WithPadding(pad bool) LayoutOption {
	return func(opts *layoutOptions) {
		opts.pad = pad
	}
}

// WithWrap lays the grid out for horizontal wrap-around: the first and
// last columns are cut in half at the surface edge so that copies of the
// map tile seamlessly side by side. Requires at least two columns.
func WithWrap(wrap bool) LayoutOption {
	return func(opts *layoutOptions) {
		opts.wrap = wrap
	}
}

// WithSawtooth picks the stagger of a rectangle grid. When on, the default,
// the first column and every other one after it sit half a hex down, so
// the top of the map zig-zags from a low corner. When off the first column
// sits half a hex up instead. Radial grids ignore it.
func WithSawtooth(on bool) LayoutOption {
	return func(opts *layoutOptions) {
		opts.sawtooth = on
	}
}

// WithWorkers sets the number of goroutines Centers may use.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) LayoutOption {
	return func(opts *layoutOptions) {
		opts.workers = n
	}
}
