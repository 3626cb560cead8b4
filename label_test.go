package hexmap

import "testing"

func TestLabelFormat(t *testing.T) {
	tests := []struct {
		name string
		size HexVector
		opts []LabelOption
		hex  HexVector
		want string
	}{
		{"default", Hex(10, 10), nil, Hex(3, 7), "03,07"},
		{"wide map", Hex(120, 10), nil, Hex(3, 7), "003,07"},
		{"no padding", Hex(10, 10), []LabelOption{WithZeroPad(false)}, Hex(3, 7), "3,7"},
		{"separator", Hex(10, 10), []LabelOption{WithSeparator(".")}, Hex(3, 7), "03.07"},
		{"spaced separator", Hex(10, 10), []LabelOption{WithSeparator(" / ")}, Hex(3, 7), "03 / 07"},
		{"separator keeps ASCII", Hex(10, 10), []LabelOption{WithSeparator("→:\t")}, Hex(3, 7), "03:07"},
		{"separator all dropped", Hex(10, 10), []LabelOption{WithSeparator("·")}, Hex(3, 7), "0307"},
		{"row first", Hex(10, 10), []LabelOption{WithRowFirst(true)}, Hex(3, 7), "07,03"},
		{"start offsets", Hex(10, 10), []LabelOption{WithStart(1, 1)}, Hex(0, 0), "01,01"},
		{"alpha", Hex(10, 10), []LabelOption{WithAlphaColumns(true)}, Hex(2, 4), "C,04"},
		{"alpha wraps", Hex(40, 10), []LabelOption{WithAlphaColumns(true)}, Hex(27, 4), "AB,04"},
		{"alpha negative", Hex(10, 10), []LabelOption{WithAlphaColumns(true)}, Hex(-1, 4), "-B,04"},
		{"reverse rows", Hex(10, 10), []LabelOption{WithReverseRows(true)}, Hex(3, 0), "03,09"},
		{"negative", Hex(10, 10), nil, Hex(-3, 2), "-3,02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLabelFormat(tt.size, tt.opts...)
			if got := f.Format(tt.hex); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLetters(t *testing.T) {
	tests := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for n, want := range tests {
		if got := letters(n); got != want {
			t.Errorf("letters(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := map[int]int{0: 1, 7: 1, 10: 2, 99: 2, 100: 3, 1000: 4, -1: 2, -10: 3}
	for n, want := range tests {
		if got := digits(n); got != want {
			t.Errorf("digits(%d) = %d, want %d", n, got, want)
		}
	}
}
