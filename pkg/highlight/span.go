package highlight

// Span paints one style tag over a byte range of a line's text. Spans are
// ordered: where two overlap, the later one wins. Offsets stay inside
// [0, line length]; zero-length spans are never emitted.
type Span struct {
	Start int
	Len   int
	Tag   State
}

// End returns the offset one past the last byte the span covers.
func (s Span) End() int {
	return s.Start + s.Len
}

// TagAt resolves the effective tag at a byte offset by replaying the
// spans in order. It returns StateNone when no span covers the offset.
func TagAt(spans []Span, offset int) State {
	tag := StateNone
	for _, s := range spans {
		if offset >= s.Start && offset < s.End() {
			tag = s.Tag
		}
	}
	return tag
}
