package hexmap

import (
	"fmt"
	"strconv"
	"strings"
)

// HexVector is a node on a triangular lattice, or equivalently the center
// of a hex on a hexmap.
//
// The lattice has three axes but only two are independent. HX and HY are
// stored; the third axis is always derived as HZ = HY - HX.
//
// HexVector is a value type. All methods return new values.
type HexVector struct {
	HX, HY int
}

// Hex is a convenience function to create a HexVector.
func Hex(hx, hy int) HexVector {
	return HexVector{HX: hx, HY: hy}
}

// Origin is the lattice node (0,0).
var Origin = HexVector{}

// units holds the six unit steps in hextant order. Rotating units[0] by n
// yields units[n].
var units = [6]HexVector{
	{0, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 0},
	{-1, -1},
}

// Units returns the six unit vectors in hextant order, starting at (0,-1).
func Units() [6]HexVector {
	return units
}

// Unit returns the unit vector for hextant n. Any n is accepted.
func Unit(n int) HexVector {
	return units[mod(n, 6)]
}

// HZ returns the dependent third axis.
func (h HexVector) HZ() int {
	return h.HY - h.HX
}

// Add returns the sum of two vectors.
func (h HexVector) Add(o HexVector) HexVector {
	return HexVector{HX: h.HX + o.HX, HY: h.HY + o.HY}
}

// Sub returns the difference of two vectors.
func (h HexVector) Sub(o HexVector) HexVector {
	return HexVector{HX: h.HX - o.HX, HY: h.HY - o.HY}
}

// Mul returns the vector scaled by an integer.
func (h HexVector) Mul(k int) HexVector {
	return HexVector{HX: h.HX * k, HY: h.HY * k}
}

// Plus adds an operand of unknown type. Only a HexVector is accepted;
// anything else returns ErrInvalidOperand.
func (h HexVector) Plus(operand any) (HexVector, error) {
	o, ok := operand.(HexVector)
	if !ok {
		return HexVector{}, fmt.Errorf("%w: cannot add %T to HexVector", ErrInvalidOperand, operand)
	}
	return h.Add(o), nil
}

// Minus subtracts an operand of unknown type. Only a HexVector is accepted;
// anything else returns ErrInvalidOperand.
func (h HexVector) Minus(operand any) (HexVector, error) {
	o, ok := operand.(HexVector)
	if !ok {
		return HexVector{}, fmt.Errorf("%w: cannot subtract %T from HexVector", ErrInvalidOperand, operand)
	}
	return h.Sub(o), nil
}

// Equal reports whether two vectors name the same lattice node.
func (h HexVector) Equal(o HexVector) bool {
	return h.HX == o.HX && h.HY == o.HY
}

// Swap exchanges the HX and HY components.
func (h HexVector) Swap() HexVector {
	return HexVector{HX: h.HY, HY: h.HX}
}

// Length returns the lattice distance from the origin,
// max(|HX|, |HY|, |HZ|).
func (h HexVector) Length() int {
	return max(abs(h.HX), abs(h.HY), abs(h.HZ()))
}

// Distance returns the lattice distance between two nodes.
func (h HexVector) Distance(o HexVector) int {
	return h.Sub(o).Length()
}

// Rotate turns the vector about the origin by n sixths of a full turn.
// Negative n rotates the other way. Rotate(0) and Rotate(6) are the identity.
func (h HexVector) Rotate(n int) HexVector {
	for range mod(n, 6) {
		h = HexVector{HX: -h.HZ(), HY: h.HX}
	}
	return h
}

// Neighbors returns the six adjacent nodes in hextant order.
func (h HexVector) Neighbors() [6]HexVector {
	var n [6]HexVector
	for i, u := range units {
		n[i] = h.Add(u)
	}
	return n
}

// String returns the vector as "hx,hy".
func (h HexVector) String() string {
	return strconv.Itoa(h.HX) + "," + strconv.Itoa(h.HY)
}

// ParseHexVector parses the "hx,hy" form produced by String.
// Surrounding whitespace around each component is ignored.
func ParseHexVector(s string) (HexVector, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return HexVector{}, fmt.Errorf("%w: %q is not of the form hx,hy", ErrInvalidOperand, s)
	}
	hx, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return HexVector{}, fmt.Errorf("%w: hx in %q: %w", ErrInvalidOperand, s, err)
	}
	hy, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return HexVector{}, fmt.Errorf("%w: hy in %q: %w", ErrInvalidOperand, s, err)
	}
	return HexVector{HX: hx, HY: hy}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// mod returns a modulo m in [0, m) for positive m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv returns a/b rounded toward negative infinity for positive b.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
