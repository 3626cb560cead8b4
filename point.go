package hexmap

import "fmt"

// Point represents a 2D position or displacement on the drawing surface.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Scale returns the component-wise product of two points.
func (p Point) Scale(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Times multiplies by an operand of unknown type: a Point scales
// component-wise, a float64 or int scales uniformly. Any other operand
// returns ErrInvalidOperand.
func (p Point) Times(k any) (Point, error) {
	switch v := k.(type) {
	case Point:
		return p.Scale(v), nil
	case float64:
		return p.Mul(v), nil
	case int:
		return p.Mul(float64(v)), nil
	default:
		return Point{}, fmt.Errorf("%w: point multiplier must be Point or scalar, got %T", ErrInvalidOperand, k)
	}
}

// Swap exchanges the X and Y coordinates.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// String returns the point as "x,y" with six decimals, the form used in
// SVG point lists.
func (p Point) String() string {
	return fmt.Sprintf("%f,%f", p.X, p.Y)
}
