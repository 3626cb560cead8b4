package hexmap

import (
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonASCII drops everything but printable ASCII from label text.
var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r < ' ' || r > '~'
}))

// LabelFormat turns display coordinates into tile labels such as "03,07"
// or "C.12".
type LabelFormat struct {
	separator  string
	colStart   int
	rowStart   int
	alpha      bool
	zeroPad    bool
	rowFirst   bool
	reverseRow bool

	rows     int
	colWidth int
	rowWidth int
}

// LabelOption configures a LabelFormat.
type LabelOption func(*LabelFormat)

// WithSeparator sets the text between the two label components.
// The default is ",". Labels are limited to printable ASCII, so any other
// character in sep is dropped.
func WithSeparator(sep string) LabelOption {
	return func(f *LabelFormat) {
		f.separator, _, _ = transform.String(nonASCII, sep)
	}
}

// WithStart offsets the first column and row numbers.
func WithStart(col, row int) LabelOption {
	return func(f *LabelFormat) { f.colStart, f.rowStart = col, row }
}

// WithAlphaColumns labels columns A, B, ... Z, AA, AB, ... instead of
// numbers.
func WithAlphaColumns(alpha bool) LabelOption {
	return func(f *LabelFormat) { f.alpha = alpha }
}

// WithZeroPad pads numeric components with leading zeros to a common
// width. Enabled by default.
func WithZeroPad(pad bool) LabelOption {
	return func(f *LabelFormat) { f.zeroPad = pad }
}

// WithRowFirst puts the row component before the column.
func WithRowFirst(rowFirst bool) LabelOption {
	return func(f *LabelFormat) { f.rowFirst = rowFirst }
}

// WithReverseRows numbers rows from the bottom of the map.
func WithReverseRows(reverse bool) LabelOption {
	return func(f *LabelFormat) { f.reverseRow = reverse }
}

// NewLabelFormat creates a label format for a map of size columns by rows.
// The size fixes the zero-padded width of each component; it is at least
// two digits.
func NewLabelFormat(size HexVector, opts ...LabelOption) *LabelFormat {
	f := &LabelFormat{
		separator: ",",
		zeroPad:   true,
		rows:      size.HY,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.colWidth = max(digits(size.HX+f.colStart), 2)
	f.rowWidth = max(digits(size.HY+f.rowStart), 2)
	return f
}

// Format returns the label for display coordinate d.
func (f *LabelFormat) Format(d HexVector) string {
	row := d.HY + f.rowStart
	if f.reverseRow {
		row = f.rowStart + f.rows - 1 - d.HY
	}
	col := f.column(d.HX + f.colStart)
	r := f.number(row, f.rowWidth)
	if f.rowFirst {
		return r + f.separator + col
	}
	return col + f.separator + r
}

func (f *LabelFormat) column(c int) string {
	if !f.alpha {
		return f.number(c, f.colWidth)
	}
	if c < 0 {
		return "-" + letters(-c)
	}
	return letters(c)
}

func (f *LabelFormat) number(n, width int) string {
	if !f.zeroPad {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%0*d", width, n)
}

// letters spells n in bijective base 26: 0 is A, 25 is Z, 26 is AA.
func letters(n int) string {
	var buf []byte
	for n++; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	slices.Reverse(buf)
	return string(buf)
}

// digits returns the printed width of n, counting a minus sign.
func digits(n int) int {
	return len(strconv.Itoa(n))
}
