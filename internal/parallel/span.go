package parallel

// Span is a half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Split cuts [0, n) into at most parts contiguous spans of nearly equal
// length, in order. Empty spans are never returned.
func Split(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	parts = max(min(parts, n), 1)

	spans := make([]Span, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < extra {
			hi++
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
		lo = hi
	}
	return spans
}
