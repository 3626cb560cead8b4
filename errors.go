package hexmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hexmap package.
var (
	// ErrInvalidOperand is returned when arithmetic is attempted between a
	// HexVector or Point and a value of an incompatible type.
	ErrInvalidOperand = errors.New("hexmap: invalid operand")

	// ErrDegenerateLayout is returned for grids with no columns or rows and
	// for drawing surfaces without a positive width and height.
	ErrDegenerateLayout = errors.New("hexmap: degenerate layout")

	// ErrUnknownVariant is returned when a geometry or grid selector is not
	// one of the known kinds.
	ErrUnknownVariant = errors.New("hexmap: unknown variant")
)

// LayoutError describes which input made a layout degenerate.
// It unwraps to ErrDegenerateLayout.
type LayoutError struct {
	Field string
	Value any
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("hexmap: degenerate layout: %s = %v", e.Field, e.Value)
}

// Unwrap returns ErrDegenerateLayout.
func (e *LayoutError) Unwrap() error {
	return ErrDegenerateLayout
}

func degenerate(field string, value any) error {
	return &LayoutError{Field: field, Value: value}
}
