// Package render turns classified markdown lines into styled terminal
// output using Lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

// ellipsis marks lines clipped by the width limit.
const ellipsis = "…"

// Options controls renderer behavior.
type Options struct {
	// Color toggles ANSI styling. When false every tag renders as plain
	// text.
	Color bool

	// Width clips rendered lines to the given display width. Zero
	// disables clipping.
	Width int
}

// Renderer converts classified lines into styled strings. Styles are
// compiled once at construction, so registry changes after New are not
// picked up.
type Renderer struct {
	styles map[highlight.State]lipgloss.Style
	width  int
}

// New compiles the registry's style descriptors into a renderer. A nil
// registry falls back to the default styles.
func New(reg *highlight.StyleRegistry, opts Options) *Renderer {
	if reg == nil {
		reg = highlight.NewStyleRegistry(highlight.DefaultStyles())
	}

	snapshot := reg.Snapshot()
	r := &Renderer{
		styles: make(map[highlight.State]lipgloss.Style, len(snapshot)),
		width:  opts.Width,
	}

	plain := lipgloss.NewStyle()
	for tag, s := range snapshot {
		if opts.Color {
			r.styles[tag] = compileStyle(s)
		} else {
			r.styles[tag] = plain
		}
	}
	return r
}

// Line renders one classified line. Spans apply in order, so a later
// span overrides earlier paint on the same range, and text outside
// every span stays unstyled.
func (r *Renderer) Line(text string, spans []highlight.Span) string {
	clipped := false
	if r.width > 0 && runewidth.StringWidth(text) > r.width {
		text = runewidth.Truncate(text, r.width-1, "")
		clipped = true
	}

	var builder strings.Builder
	for _, seg := range segments(text, spans) {
		builder.WriteString(r.styleFor(seg.tag).Render(text[seg.start:seg.end]))
	}
	if clipped {
		builder.WriteString(ellipsis)
	}
	return builder.String()
}

// Document renders every line of doc, one per output line.
func (r *Renderer) Document(doc *highlight.Document) string {
	var builder strings.Builder
	for i := 0; i < doc.LineCount(); i++ {
		builder.WriteString(r.Line(doc.LineText(i), doc.Spans(i)))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Sample renders the tag's own name in its configured style, for theme
// previews.
func (r *Renderer) Sample(tag highlight.State) string {
	return r.styleFor(tag).Render(tag.String())
}

func (r *Renderer) styleFor(tag highlight.State) lipgloss.Style {
	if st, ok := r.styles[tag]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// segment is a maximal run of bytes sharing one tag.
type segment struct {
	start, end int
	tag        highlight.State
}

// segments flattens ordered spans into non-overlapping runs covering the
// whole line. Out-of-range spans are clamped rather than rejected.
func segments(text string, spans []highlight.Span) []segment {
	if text == "" {
		return nil
	}

	tags := make([]highlight.State, len(text))
	for _, sp := range spans {
		start, end := sp.Start, sp.End()
		if start < 0 {
			start = 0
		}
		if end > len(tags) {
			end = len(tags)
		}
		for i := start; i < end; i++ {
			tags[i] = sp.Tag
		}
	}

	segs := make([]segment, 0, 4)
	runStart := 0
	for i := 1; i <= len(tags); i++ {
		if i == len(tags) || tags[i] != tags[i-1] {
			segs = append(segs, segment{start: runStart, end: i, tag: tags[i-1]})
			runStart = i
		}
	}
	return segs
}

// compileStyle translates a style descriptor into a Lipgloss style.
// Monospace and Scale have no terminal equivalent: cells are already
// monospaced and have a fixed size.
func compileStyle(s highlight.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Strike {
		st = st.Strikethrough(true)
	}
	return st
}
