package highlight

// Buffer is the host text buffer the classifier reads from and writes
// block states back to. Lines are addressed by index; the stored state is
// whatever the last classification pass left, and it is the only channel
// through which one line learns about another. Implementations must
// return zero values for out-of-range indices rather than panic.
type Buffer interface {
	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// LineText returns the raw text of line i, without its newline.
	LineText(i int) string

	// LineState returns the block state left on line i by its last
	// classification, or StateNone if it was never classified.
	LineState(i int) State

	// SetLineState stores the final block state of line i.
	SetLineState(i int, s State)
}
