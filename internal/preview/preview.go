// Package preview rasterizes a hexmap layout into an image.
//
// It is a minimal stand-in for a real document renderer: tile outlines,
// center dots and coordinate labels, all in one stroke color.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/hexmap"
)

// Border selects how tile outlines are drawn.
type Border uint8

const (
	// BorderSolid draws the full outline.
	BorderSolid Border = iota
	// BorderVertex draws short tics at each corner only.
	BorderVertex
	// BorderNone draws no outline.
	BorderNone
)

// String returns the border name.
func (b Border) String() string {
	switch b {
	case BorderSolid:
		return "solid"
	case BorderVertex:
		return "vertex"
	case BorderNone:
		return "none"
	default:
		return "unknown"
	}
}

// Options controls what Render draws.
type Options struct {
	Background color.Color
	Stroke     color.Color
	Border     Border

	// TicSize is the length of a corner tic as a fraction of the side.
	TicSize float64

	// Dots draws a dot at each tile center.
	Dots bool

	// Labels formats the display coordinate of each tile. Nil disables
	// labels.
	Labels *hexmap.LabelFormat
}

// DefaultOptions returns black solid outlines with dots on white.
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		Stroke:     color.Black,
		Border:     BorderSolid,
		TicSize:    0.25,
		Dots:       true,
	}
}

var parseGoRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Render draws every tile of l onto a new image the size of the layout's
// drawing surface, rounded up to whole pixels.
func Render(l *hexmap.Layout, opts Options) (*image.RGBA, error) {
	size := l.Size()
	w, h := int(math.Ceil(size.X)), int(math.Ceil(size.Y))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)

	stroke := l.StrokeWidth()
	z := vector.NewRasterizer(w, h)
	n := 0
	for tile := range l.Tiles() {
		vs := tile.Vertices(l.Orientation())
		switch opts.Border {
		case BorderSolid:
			for i := 0; i+1 < len(vs); i++ {
				segment(z, vs[i], vs[i+1], stroke)
			}
		case BorderVertex:
			for i := 0; i+1 < len(vs); i++ {
				tic := vs[i+1].Sub(vs[i]).Mul(opts.TicSize)
				segment(z, vs[i], vs[i].Add(tic), stroke)
				segment(z, vs[i+1], vs[i+1].Sub(tic), stroke)
			}
		}
		if opts.Dots && tile.ShowsDot() {
			disc(z, tile.Center, stroke)
		}
		n++
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	if opts.Labels != nil {
		if err := drawLabels(img, l, opts); err != nil {
			return nil, err
		}
	}

	hexmap.Logger().Debug("preview rendered", "tiles", n, "width", w, "height", h)
	return img, nil
}

func drawLabels(img *image.RGBA, l *hexmap.Layout, opts Options) error {
	f, err := parseGoRegular()
	if err != nil {
		return fmt.Errorf("preview: failed to parse font: %w", err)
	}
	// One fifth of a hex height reads well at any map size.
	pt := max(l.TileSize().Y*2/5, 4)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pt, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fmt.Errorf("preview: failed to create face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(opts.Stroke), Face: face}
	for tile := range l.Tiles() {
		text := opts.Labels.Format(tile.Display)
		at := tile.LabelCenter()
		width := d.MeasureString(text)
		d.Dot = fixed.Point26_6{
			X: toFixed(at.X) - width/2,
			Y: toFixed(at.Y),
		}
		d.DrawString(text)
	}
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// segment adds a line from a to b of the given width as a filled quad.
func segment(z *vector.Rasterizer, a, b hexmap.Point, width float64) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	n := hexmap.Pt(-d.Y, d.X).Mul(width / 2 / length)
	moveTo(z, a.Add(n))
	lineTo(z, b.Add(n))
	lineTo(z, b.Sub(n))
	lineTo(z, a.Sub(n))
	z.ClosePath()
}

// disc adds a filled circle approximated by a polygon. It winds the same
// way as segment so that overlaps add instead of cancelling.
func disc(z *vector.Rasterizer, c hexmap.Point, r float64) {
	const sides = 24
	moveTo(z, c.Add(hexmap.Pt(r, 0)))
	for i := 1; i < sides; i++ {
		a := -2 * math.Pi * float64(i) / sides
		lineTo(z, c.Add(hexmap.Pt(r*math.Cos(a), r*math.Sin(a))))
	}
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p hexmap.Point) { z.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(z *vector.Rasterizer, p hexmap.Point) { z.LineTo(float32(p.X), float32(p.Y)) }
