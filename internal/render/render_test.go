package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/gomdhilite/internal/render"
	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

func plainRenderer(width int) *render.Renderer {
	return render.New(nil, render.Options{Color: false, Width: width})
}

func TestLinePlainPassthrough(t *testing.T) {
	t.Parallel()

	r := plainRenderer(0)
	spans := []highlight.Span{
		{Start: 0, Len: 7, Tag: highlight.StateH1},
		{Start: 2, Len: 5, Tag: highlight.StateBold},
	}

	// With styling disabled the text must come through untouched no
	// matter how the spans carve it up.
	assert.Equal(t, "# Title", r.Line("# Title", spans))
}

func TestLineEmptyText(t *testing.T) {
	t.Parallel()

	r := plainRenderer(0)
	assert.Equal(t, "", r.Line("", nil))
}

func TestLineClipsToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "ascii clipped", text: "abcdef", width: 4, want: "abc…"},
		{name: "ascii fits", text: "abcd", width: 4, want: "abcd"},
		{name: "wide runes clipped", text: "日本語", width: 4, want: "日…"},
		{name: "zero width disables clipping", text: "abcdef", width: 0, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := plainRenderer(tt.width)
			assert.Equal(t, tt.want, r.Line(tt.text, nil))
		})
	}
}

func TestDocumentRendersEveryLine(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("# Title\n\nplain text")
	h := highlight.New(doc, highlight.DefaultOptions())
	h.OnPaint(doc.RecordSpans)
	h.HighlightAll()
	for h.Flush() {
	}

	r := plainRenderer(0)
	assert.Equal(t, "# Title\n\nplain text\n", r.Document(doc))
}

func TestSample(t *testing.T) {
	t.Parallel()

	r := plainRenderer(0)
	assert.Equal(t, "heading-1", r.Sample(highlight.StateH1))
	assert.Equal(t, "code-block", r.Sample(highlight.StateCodeBlock))
}

func TestNewNilRegistry(t *testing.T) {
	t.Parallel()

	r := render.New(nil, render.Options{})
	assert.Equal(t, "text", r.Line("text", nil))
}

func TestColorStylesCompile(t *testing.T) {
	t.Parallel()

	// ANSI output depends on the terminal profile, so only check that a
	// color renderer still yields the raw text for every default tag.
	reg := highlight.NewStyleRegistry(highlight.DefaultStyles())
	r := render.New(reg, render.Options{Color: true})

	for _, tag := range highlight.States() {
		spans := []highlight.Span{{Start: 0, Len: 4, Tag: tag}}
		assert.Contains(t, r.Line("text", spans), "text", "tag %s", tag)
	}
}

func TestLineNeverAltersText(t *testing.T) {
	t.Parallel()

	r := plainRenderer(0)
	alphabet := rapid.RuneFrom([]rune("ab #*`->|_=1日"))

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(alphabet, 0, 40, -1).Draw(t, "text")

		count := rapid.IntRange(0, 5).Draw(t, "count")
		spans := make([]highlight.Span, count)
		for i := range spans {
			spans[i] = highlight.Span{
				Start: rapid.IntRange(-2, len(text)+2).Draw(t, "start"),
				Len:   rapid.IntRange(0, len(text)+2).Draw(t, "len"),
				Tag:   highlight.StateBold,
			}
		}

		if got := r.Line(text, spans); got != text {
			t.Fatalf("Line altered text: %q -> %q", text, got)
		}
	})
}

func TestSegmentsRespectSpanOrder(t *testing.T) {
	t.Parallel()

	// Verified through TagAt: the renderer and the span model must agree
	// on which tag owns an offset after overlapping paints.
	spans := []highlight.Span{
		{Start: 0, Len: 10, Tag: highlight.StateItalic},
		{Start: 3, Len: 4, Tag: highlight.StateBold},
	}

	require.Equal(t, highlight.StateItalic, highlight.TagAt(spans, 2))
	require.Equal(t, highlight.StateBold, highlight.TagAt(spans, 3))
	require.Equal(t, highlight.StateBold, highlight.TagAt(spans, 6))
	require.Equal(t, highlight.StateItalic, highlight.TagAt(spans, 7))
}
