package main

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/hexmap"
	"github.com/gogpu/hexmap/internal/preview"
)

// envPrefix namespaces every environment variable hexdemo reads.
const envPrefix = "HEXMAP_"

// Limits on a single HTTP request. Rendering allocates four bytes per
// pixel and /layout writes one line per tile.
const (
	maxSurface = 8192
	maxTiles   = 1 << 16
)

var (
	errBadQuery = errors.New("invalid query")
	errTooLarge = errors.New("map too large")
)

// config is everything needed to build and draw one map. Defaults come
// from HEXMAP_* environment variables (optionally loaded from .env) and
// flags override them.
type config struct {
	Width, Height float64
	Grid          string
	Size          string
	Geometry      string
	Origin        string
	Orientation   string
	Stroke        float64
	Wrap          bool
	Sawtooth      bool
	Pad           bool
	Labels        bool
	Alpha         bool
	Border        string
	Output        string
	Addr          string
	Serve         bool
	Debug         bool
}

func defaultConfig() config {
	return config{
		Width:       envFloat("WIDTH", 612),
		Height:      envFloat("HEIGHT", 792),
		Grid:        envString("GRID", "rectangle"),
		Size:        envString("SIZE", "10,12"),
		Geometry:    envString("GEOMETRY", "rectangle"),
		Origin:      envString("ORIGIN", "0,0"),
		Orientation: envString("ORIENTATION", "vertical"),
		Stroke:      envFloat("STROKE", hexmap.DefaultStrokePercent),
		Wrap:        envBool("WRAP", false),
		Sawtooth:    envBool("SAWTOOTH", true),
		Pad:         envBool("PAD", true),
		Labels:      envBool("LABELS", true),
		Alpha:       envBool("ALPHA", false),
		Border:      envString("BORDER", "solid"),
		Output:      envString("OUTPUT", "hexmap.png"),
		Addr:        envString("ADDR", ":8080"),
		Debug:       envBool("DEBUG", false),
	}
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Width, "width", c.Width, "drawing surface width")
	fs.Float64Var(&c.Height, "height", c.Height, "drawing surface height")
	fs.StringVar(&c.Grid, "grid", c.Grid, "grid kind: rectangle or radial")
	fs.StringVar(&c.Size, "size", c.Size, "grid size as cols,rows (radial: radius,0)")
	fs.StringVar(&c.Geometry, "geometry", c.Geometry, "display geometry: triangle, rectangle or herringbone")
	fs.StringVar(&c.Origin, "origin", c.Origin, "display origin as hx,hy")
	fs.StringVar(&c.Orientation, "orientation", c.Orientation, "vertical or horizontal")
	fs.Float64Var(&c.Stroke, "stroke", c.Stroke, "stroke width as a fraction of the surface")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "draw the map as a wrapped (edge-clipped) rectangle")
	fs.BoolVar(&c.Sawtooth, "sawtooth", c.Sawtooth, "drop the first column of a rectangle half a hex")
	fs.BoolVar(&c.Pad, "pad", c.Pad, "center the map on the surface")
	fs.BoolVar(&c.Labels, "labels", c.Labels, "draw coordinate labels")
	fs.BoolVar(&c.Alpha, "alpha", c.Alpha, "label columns with letters")
	fs.StringVar(&c.Border, "border", c.Border, "tile border: solid, vertex or none")
	fs.StringVar(&c.Output, "output", c.Output, "output PNG file")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for -serve")
	fs.BoolVar(&c.Serve, "serve", c.Serve, "serve maps over HTTP instead of writing a file")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log layout details")
}

// apply overrides fields from URL query parameters named like the flags.
// Unparsable values wrap errBadQuery; maps beyond the request limits wrap
// errTooLarge.
func (c config) apply(q url.Values) (config, error) {
	var err error
	float := func(key string, dst *float64) {
		if v := q.Get(key); v != "" && err == nil {
			*dst, err = strconv.ParseFloat(v, 64)
		}
	}
	boolean := func(key string, dst *bool) {
		if v := q.Get(key); v != "" && err == nil {
			*dst, err = strconv.ParseBool(v)
		}
	}
	str := func(key string, dst *string) {
		if v := q.Get(key); v != "" {
			*dst = v
		}
	}

	float("width", &c.Width)
	float("height", &c.Height)
	float("stroke", &c.Stroke)
	boolean("wrap", &c.Wrap)
	boolean("sawtooth", &c.Sawtooth)
	boolean("pad", &c.Pad)
	boolean("labels", &c.Labels)
	boolean("alpha", &c.Alpha)
	str("grid", &c.Grid)
	str("size", &c.Size)
	str("geometry", &c.Geometry)
	str("origin", &c.Origin)
	str("orientation", &c.Orientation)
	str("border", &c.Border)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errBadQuery, err)
	}
	return c, c.checkLimits()
}

// checkLimits rejects surfaces and grids too large to build on request.
func (c config) checkLimits() error {
	if !(c.Width <= maxSurface) || !(c.Height <= maxSurface) {
		return fmt.Errorf("%w: surface %gx%g, limit %d per side", errTooLarge, c.Width, c.Height, maxSurface)
	}
	kind, err := hexmap.ParseGridKind(c.Grid)
	if err != nil {
		return err
	}
	size, err := hexmap.ParseHexVector(c.Size)
	if err != nil {
		return err
	}
	if max(size.HX, size.HY) > maxTiles || min(size.HX, size.HY) < -maxTiles {
		return fmt.Errorf("%w: grid size %v", errTooLarge, size)
	}
	grid, err := hexmap.NewGrid(kind, size)
	if err != nil {
		return err
	}
	if n := grid.Len(); n > maxTiles {
		return fmt.Errorf("%w: %d tiles, limit %d", errTooLarge, n, maxTiles)
	}
	return nil
}

// key returns c with the fields that do not affect the drawn map cleared.
func (c config) key() config {
	c.Output, c.Addr = "", ""
	c.Serve, c.Debug = false, false
	return c
}

// layout builds the layout described by c.
func (c config) layout() (*hexmap.Layout, error) {
	kind, err := hexmap.ParseGridKind(c.Grid)
	if err != nil {
		return nil, err
	}
	size, err := hexmap.ParseHexVector(c.Size)
	if err != nil {
		return nil, err
	}
	grid, err := hexmap.NewGrid(kind, size)
	if err != nil {
		return nil, err
	}

	gk, err := hexmap.ParseGeometryKind(c.Geometry)
	if err != nil {
		return nil, err
	}
	origin, err := hexmap.ParseHexVector(c.Origin)
	if err != nil {
		return nil, err
	}
	geom, err := hexmap.NewGeometry(gk, origin)
	if err != nil {
		return nil, err
	}

	o, err := hexmap.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	return hexmap.NewLayout(hexmap.Pt(c.Width, c.Height), grid, geom,
		hexmap.WithOrientation(o),
		hexmap.WithStrokePercent(c.Stroke),
		hexmap.WithPadding(c.Pad),
		hexmap.WithWrap(c.Wrap),
		hexmap.WithSawtooth(c.Sawtooth),
	)
}

// previewOptions returns the drawing options for a layout built from c.
func (c config) previewOptions(l *hexmap.Layout) (preview.Options, error) {
	opts := preview.DefaultOptions()
	switch strings.ToLower(c.Border) {
	case "solid":
		opts.Border = preview.BorderSolid
	case "vertex":
		opts.Border = preview.BorderVertex
	case "none":
		opts.Border = preview.BorderNone
	default:
		return opts, fmt.Errorf("%w: border %q", hexmap.ErrUnknownVariant, c.Border)
	}
	if c.Labels {
		opts.Labels = hexmap.NewLabelFormat(l.Grid().Dimensions(), hexmap.WithAlphaColumns(c.Alpha))
	}
	return opts, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(envString(key, ""), 64); err == nil {
		return f
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(envString(key, "")); err == nil {
		return b
	}
	return def
}
