package hexmap

import (
	"errors"
	"testing"
)

// sample returns every vector with components in [-n, n].
func sample(n int) []HexVector {
	var out []HexVector
	for hx := -n; hx <= n; hx++ {
		for hy := -n; hy <= n; hy++ {
			out = append(out, Hex(hx, hy))
		}
	}
	return out
}

func TestHexVector_HZ(t *testing.T) {
	tests := []struct {
		name string
		h    HexVector
		want int
	}{
		{"origin", Origin, 0},
		{"x axis", Hex(3, 0), -3},
		{"y axis", Hex(0, 4), 4},
		{"diagonal", Hex(2, 2), 0},
		{"negative", Hex(-1, -5), -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.HZ(); got != tt.want {
				t.Errorf("%v.HZ() = %d, want %d", tt.h, got, tt.want)
			}
		})
	}
}

func TestHexVector_AddSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     HexVector
		sum, dif HexVector
	}{
		{"zero", Origin, Origin, Origin, Origin},
		{"positive", Hex(1, 2), Hex(3, 4), Hex(4, 6), Hex(-2, -2)},
		{"mixed", Hex(1, -2), Hex(-3, 4), Hex(-2, 2), Hex(4, -6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.sum {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.a, tt.b, got, tt.sum)
			}
			if got := tt.a.Sub(tt.b); got != tt.dif {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.a, tt.b, got, tt.dif)
			}
		})
	}
}

func TestHexVector_ThirdAxisConsistent(t *testing.T) {
	vs := sample(3)
	for _, a := range vs {
		for _, b := range vs {
			for _, h := range []HexVector{a.Add(b), a.Sub(b), a.Rotate(b.HX)} {
				if h.HZ() != h.HY-h.HX {
					t.Fatalf("HZ of %v = %d, want %d", h, h.HZ(), h.HY-h.HX)
				}
			}
		}
	}
}

func TestHexVector_PlusMinusOperand(t *testing.T) {
	got, err := Hex(1, 2).Plus(Hex(2, 3))
	if err != nil || got != Hex(3, 5) {
		t.Errorf("Plus(HexVector) = %v, %v; want 3,5, nil", got, err)
	}
	got, err = Hex(1, 2).Minus(Hex(2, 3))
	if err != nil || got != Hex(-1, -1) {
		t.Errorf("Minus(HexVector) = %v, %v; want -1,-1, nil", got, err)
	}

	for _, operand := range []any{1, 2.5, Pt(1, 1), "1,1", nil} {
		if _, err := Hex(1, 2).Plus(operand); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("Plus(%#v) error = %v, want ErrInvalidOperand", operand, err)
		}
		if _, err := Hex(1, 2).Minus(operand); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("Minus(%#v) error = %v, want ErrInvalidOperand", operand, err)
		}
	}
}

func TestHexVector_EqualSwap(t *testing.T) {
	if !Hex(2, 3).Equal(Hex(2, 3)) {
		t.Error("Hex(2,3) should equal itself")
	}
	if Hex(2, 3).Equal(Hex(3, 2)) {
		t.Error("Hex(2,3) should not equal Hex(3,2)")
	}
	if got := Hex(2, 3).Swap(); got != Hex(3, 2) {
		t.Errorf("Swap() = %v, want 3,2", got)
	}
}

func TestHexVector_Length(t *testing.T) {
	tests := []struct {
		h    HexVector
		want int
	}{
		{Origin, 0},
		{Hex(0, -1), 1},
		{Hex(1, 1), 1},
		{Hex(3, 0), 3},
		{Hex(2, -2), 4},
		{Hex(-2, 2), 4},
		{Hex(3, 3), 3},
	}
	for _, tt := range tests {
		if got := tt.h.Length(); got != tt.want {
			t.Errorf("%v.Length() = %d, want %d", tt.h, got, tt.want)
		}
	}

	for _, h := range sample(4) {
		if (h.Length() == 0) != (h == Origin) {
			t.Errorf("%v.Length() = %d; only the origin has length 0", h, h.Length())
		}
		for n := range 6 {
			if got := h.Rotate(n).Length(); got != h.Length() {
				t.Errorf("%v.Rotate(%d).Length() = %d, want %d", h, n, got, h.Length())
			}
		}
	}
}

func TestHexVector_Distance(t *testing.T) {
	if got := Hex(1, 1).Distance(Hex(-1, 2)); got != 3 {
		t.Errorf("Distance = %d, want 3", got)
	}
	for _, n := range Origin.Neighbors() {
		if Origin.Distance(n) != 1 {
			t.Errorf("neighbor %v is not at distance 1", n)
		}
	}
}

func TestHexVector_RotateUnits(t *testing.T) {
	u := Units()
	for n := range 6 {
		if got := u[0].Rotate(n); got != u[n] {
			t.Errorf("Units[0].Rotate(%d) = %v, want %v", n, got, u[n])
		}
		if got := Unit(n - 6); got != u[n] {
			t.Errorf("Unit(%d) = %v, want %v", n-6, got, u[n])
		}
	}
}

func TestHexVector_RotateIdentity(t *testing.T) {
	for _, a := range sample(3) {
		if got := a.Rotate(0); got != a {
			t.Errorf("%v.Rotate(0) = %v", a, got)
		}
		if got := a.Rotate(6); got != a {
			t.Errorf("%v.Rotate(6) = %v", a, got)
		}
		if got := a.Rotate(-6); got != a {
			t.Errorf("%v.Rotate(-6) = %v", a, got)
		}
	}
}

func TestHexVector_RotateCompose(t *testing.T) {
	for _, a := range sample(2) {
		for m := -7; m <= 7; m++ {
			for n := -7; n <= 7; n++ {
				if got, want := a.Rotate(m).Rotate(n), a.Rotate(m+n); got != want {
					t.Fatalf("%v.Rotate(%d).Rotate(%d) = %v, want %v", a, m, n, got, want)
				}
			}
		}
	}
}

func TestHexVector_RotateInverse(t *testing.T) {
	for _, a := range sample(3) {
		if got := a.Rotate(1).Rotate(-1); got != a {
			t.Errorf("%v.Rotate(1).Rotate(-1) = %v", a, got)
		}
		if got := a.Rotate(3); got != Origin.Sub(a) {
			t.Errorf("%v.Rotate(3) = %v, want %v", a, got, Origin.Sub(a))
		}
	}
}

func TestHexVector_StringParse(t *testing.T) {
	tests := []struct {
		h    HexVector
		want string
	}{
		{Origin, "0,0"},
		{Hex(3, -2), "3,-2"},
		{Hex(-10, 7), "-10,7"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		got, err := ParseHexVector(tt.want)
		if err != nil || got != tt.h {
			t.Errorf("ParseHexVector(%q) = %v, %v; want %v", tt.want, got, err, tt.h)
		}
	}

	if got, err := ParseHexVector(" 4 , 5 "); err != nil || got != Hex(4, 5) {
		t.Errorf("ParseHexVector with spaces = %v, %v", got, err)
	}
	for _, bad := range []string{"", "4", "a,1", "1,b", "1;2"} {
		if _, err := ParseHexVector(bad); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("ParseHexVector(%q) error = %v, want ErrInvalidOperand", bad, err)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int
		div, mod int
	}{
		{4, 2, 2, 0},
		{5, 2, 2, 1},
		{-1, 2, -1, 1},
		{-2, 2, -1, 0},
		{-3, 2, -2, 1},
		{0, 2, 0, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := mod(tt.a, tt.b); got != tt.mod {
			t.Errorf("mod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}
