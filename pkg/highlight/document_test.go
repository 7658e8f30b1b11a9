package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"crlf endings", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty text is one empty line", "", []string{""}},
		{"lone newline", "\n", []string{""}},
		{"interior blank preserved", "a\n\nb", []string{"a", "", "b"}},
		{"blank before trailing newline preserved", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, highlight.SplitLines(tt.text))
		})
	}
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("one\ntwo")

	require.Equal(t, 2, doc.LineCount())
	assert.Equal(t, "one", doc.LineText(0))
	assert.Equal(t, "two", doc.LineText(1))

	doc.SetLineState(1, highlight.StateList)
	assert.Equal(t, highlight.StateList, doc.LineState(1))

	// Out-of-range access returns zero values and never panics.
	assert.Equal(t, "", doc.LineText(-1))
	assert.Equal(t, "", doc.LineText(2))
	assert.Equal(t, highlight.StateNone, doc.LineState(99))
	assert.Nil(t, doc.Spans(99))
	doc.SetLineState(99, highlight.StateH1)
	doc.SetLineText(99, "x")
	doc.RecordSpans(99, highlight.StateNone, nil)
}

func TestSetLineTextKeepsState(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("# Title")
	doc.SetLineState(0, highlight.StateH1)

	doc.SetLineText(0, "## Title")
	assert.Equal(t, "## Title", doc.LineText(0))
	assert.Equal(t, highlight.StateH1, doc.LineState(0), "stored state waits for re-classification")
}

func TestUpdateIdenticalIsNoOp(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("a\nb\nc")
	doc.SetLineState(1, highlight.StateList)

	changed := doc.Update([]string{"a", "b", "c"})

	assert.Nil(t, changed)
	assert.Equal(t, highlight.StateList, doc.LineState(1))
}

func TestUpdateAppend(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("a")
	changed := doc.Update([]string{"a", "b"})

	assert.Equal(t, []int{1}, changed)
	assert.Equal(t, 2, doc.LineCount())
}

func TestUpdateMiddleEditIncludesSuccessor(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("a\nb\nc")
	changed := doc.Update([]string{"a", "X", "c"})

	// The line after the splice re-classifies too: its predecessor state
	// may have moved even though its text did not.
	assert.Equal(t, []int{1, 2}, changed)
}

func TestUpdateInsertion(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("a\nc")
	changed := doc.Update([]string{"a", "b", "c"})

	assert.Equal(t, []int{1, 2}, changed)
	assert.Equal(t, "b", doc.LineText(1))
}

func TestUpdateTailDeletion(t *testing.T) {
	t.Parallel()

	doc := highlight.NewDocument("a\nb\nc")
	changed := doc.Update([]string{"a", "b"})

	assert.Empty(t, changed)
	assert.Equal(t, 2, doc.LineCount())
}

func TestUpdatePreservesUntouchedLines(t *testing.T) {
	t.Parallel()

	doc, _ := newSettled(t, "# Title\n\nbody", highlight.DefaultOptions())
	wantSpans := doc.Spans(0)
	require.NotEmpty(t, wantSpans)

	changed := doc.Update([]string{"# Title", "", "edited"})
	require.Equal(t, []int{2}, changed)

	// Prefix lines keep their classification; the replaced line resets.
	assert.Equal(t, highlight.StateH1, doc.LineState(0))
	assert.Equal(t, wantSpans, doc.Spans(0))
	assert.Equal(t, highlight.StateNone, doc.LineState(2))
	assert.Nil(t, doc.Spans(2))
}
