package hexmap

import (
	"errors"
	"testing"
)

func TestTile_Vertices(t *testing.T) {
	tile := Tile{Center: Pt(100, 50), Size: Pt(10, 20)}

	got := tile.Vertices(Vertical)
	want := []Point{
		Pt(80, 50), Pt(90, 30), Pt(110, 30), Pt(120, 50), Pt(110, 70), Pt(90, 70), Pt(80, 50),
	}
	if len(got) != len(want) {
		t.Fatalf("Vertices() has %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if !approxPt(got[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Horizontal outlines are transposed about the center.
	h := tile.Vertices(Horizontal)
	if !approxPt(h[0], Pt(100, 30)) || !approxPt(h[1], Pt(80, 40)) {
		t.Errorf("horizontal vertices start %v, %v", h[0], h[1])
	}
}

func TestTile_EdgeOutlines(t *testing.T) {
	tests := []struct {
		edge  Edge
		count int
		first Point
		last  Point
	}{
		{EdgeInterior, 7, Pt(-2, 0), Pt(-2, 0)},
		{EdgeTop, 4, Pt(-2, 0), Pt(2, 0)},
		{EdgeBottom, 4, Pt(2, 0), Pt(-2, 0)},
		{EdgeLeft, 5, Pt(0, -1), Pt(0, 1)},
		{EdgeRight, 5, Pt(0, -1), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			v := Tile{Size: Pt(1, 1), Edge: tt.edge}.Vertices(Vertical)
			if len(v) != tt.count {
				t.Fatalf("%d vertices, want %d", len(v), tt.count)
			}
			if v[0] != tt.first || v[len(v)-1] != tt.last {
				t.Errorf("outline runs %v..%v, want %v..%v", v[0], v[len(v)-1], tt.first, tt.last)
			}
		})
	}

	right := Tile{Size: Pt(1, 1), Edge: EdgeRight}.Vertices(Vertical)
	left := Tile{Size: Pt(1, 1), Edge: EdgeLeft}.Vertices(Vertical)
	for i := range left {
		if right[i] != Pt(-left[i].X, left[i].Y) {
			t.Errorf("right vertex %d = %v, want mirror of %v", i, right[i], left[i])
		}
	}
}

func TestTile_OutlineTablesUnchanged(t *testing.T) {
	v := Tile{Size: Pt(5, 5), Center: Pt(1, 1)}.Vertices(Vertical)
	v[0] = Pt(999, 999)
	if interiorOutline[0] != Pt(-2, 0) {
		t.Fatal("Vertices() aliases the shared outline table")
	}
}

func TestTile_Label(t *testing.T) {
	tests := []struct {
		edge   Edge
		offset Point
		dot    bool
	}{
		{EdgeInterior, Pt(0, 15), true},
		{EdgeTop, Pt(0, 15), true},
		{EdgeBottom, Pt(0, 15), true},
		{EdgeLeft, Pt(10, 0), false},
		{EdgeRight, Pt(-10, 0), false},
	}
	for _, tt := range tests {
		tile := Tile{Center: Pt(50, 50), Size: Pt(10, 20), Edge: tt.edge}
		if got := tile.LabelOffset(); !approxPt(got, tt.offset) {
			t.Errorf("%v LabelOffset() = %v, want %v", tt.edge, got, tt.offset)
		}
		if got := tile.LabelCenter(); !approxPt(got, Pt(50, 50).Add(tt.offset)) {
			t.Errorf("%v LabelCenter() = %v", tt.edge, got)
		}
		if tile.ShowsDot() != tt.dot {
			t.Errorf("%v ShowsDot() = %v, want %v", tt.edge, tile.ShowsDot(), tt.dot)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Error("Orientation.String() mismatch")
	}
	if Edge(42).String() != "unknown" {
		t.Errorf("Edge(42).String() = %q", Edge(42).String())
	}
	if RadialGrid.String() != "radial" || GridKind(5).String() != "unknown" {
		t.Error("GridKind.String() mismatch")
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ParseOrientation(" Horizontal"); err != nil || o != Horizontal {
		t.Errorf("ParseOrientation(Horizontal) = %v, %v", o, err)
	}
	if o, err := ParseOrientation("v"); err != nil || o != Vertical {
		t.Errorf("ParseOrientation(v) = %v, %v", o, err)
	}
	if _, err := ParseOrientation("diagonal"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseOrientation(diagonal) error = %v, want ErrUnknownVariant", err)
	}
}
