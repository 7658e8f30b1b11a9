package highlight

import "strings"

type documentLine struct {
	text  string
	state State
	spans []Span
}

// Document is an in-memory Buffer that also records the spans emitted for
// each line. It serves hosts without a buffer of their own, such as the
// CLI renderer; editor hosts usually implement Buffer over their native
// storage instead.
type Document struct {
	lines []documentLine
}

// NewDocument splits text into lines and wraps them in a Document. CRLF
// endings are tolerated; a single trailing newline does not produce a
// final empty line.
func NewDocument(text string) *Document {
	raw := SplitLines(text)
	lines := make([]documentLine, len(raw))
	for i, t := range raw {
		lines[i] = documentLine{text: t}
	}
	return &Document{lines: lines}
}

// SplitLines breaks text on newlines, dropping carriage returns and the
// empty remainder after a trailing newline.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineText returns the text of line i, or "" when out of range.
func (d *Document) LineText(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i].text
}

// LineState returns the stored block state of line i, or StateNone when
// out of range.
func (d *Document) LineState(i int) State {
	if i < 0 || i >= len(d.lines) {
		return StateNone
	}
	return d.lines[i].state
}

// SetLineState stores the block state of line i. Out of range is a no-op.
func (d *Document) SetLineState(i int, s State) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i].state = s
}

// SetLineText replaces the text of line i without touching its stored
// state; the caller re-classifies the line afterwards.
func (d *Document) SetLineText(i int, text string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i].text = text
}

// Update replaces the whole document text and returns the indices of
// lines needing re-classification, in new-document numbering. Lines in
// the unchanged prefix and suffix keep their stored state and spans, so
// a host re-classifies only the returned lines and lets queued re-scans
// settle the rest. After an insert or delete the first line past the
// changed region is included, because its predecessor state moved.
func (d *Document) Update(texts []string) []int {
	old := d.lines

	prefix := 0
	for prefix < len(old) && prefix < len(texts) && old[prefix].text == texts[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(texts)-prefix &&
		old[len(old)-1-suffix].text == texts[len(texts)-1-suffix] {
		suffix++
	}

	lines := make([]documentLine, len(texts))
	copy(lines[:prefix], old[:prefix])
	for j := 0; j < suffix; j++ {
		lines[len(texts)-1-j] = old[len(old)-1-j]
	}
	for i := prefix; i < len(texts)-suffix; i++ {
		lines[i] = documentLine{text: texts[i]}
	}
	d.lines = lines

	start, end := prefix, len(texts)-suffix
	if start == end && len(texts) == len(old) {
		return nil
	}

	changed := make([]int, 0, end-start+1)
	for i := start; i < end; i++ {
		changed = append(changed, i)
	}
	if end < len(texts) {
		changed = append(changed, end)
	}
	return changed
}

// Spans returns the spans recorded for line i by the last classification.
func (d *Document) Spans(i int) []Span {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i].spans
}

// RecordSpans stores the spans emitted for line i. It has the PaintFunc
// shape so a Document can be wired directly as a Highlighter paint sink.
func (d *Document) RecordSpans(i int, _ State, spans []Span) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i].spans = spans
}
