package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

func TestDefaultStylesCoverEveryTag(t *testing.T) {
	t.Parallel()

	styles := highlight.DefaultStyles()
	require.Len(t, styles, len(highlight.States()))
	for _, tag := range highlight.States() {
		_, ok := styles[tag]
		assert.True(t, ok, "no default style for %s", tag)
	}

	// Spot-check a few descriptors the renderer leans on.
	assert.Equal(t, "#00316e", styles[highlight.StateH1].Foreground)
	assert.True(t, styles[highlight.StateH1].Bold)
	assert.True(t, styles[highlight.StateInlineCode].Monospace)
	assert.True(t, styles[highlight.StateLink].Underline)
	assert.True(t, styles[highlight.StateNone].IsZero())
}

func TestStyleIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, highlight.Style{}.IsZero())
	assert.False(t, highlight.Style{Bold: true}.IsZero())
	assert.False(t, highlight.Style{Scale: 1.2}.IsZero())
}

func TestRegistryUnconfiguredTagIsZero(t *testing.T) {
	t.Parallel()

	reg := highlight.NewStyleRegistry(nil)
	assert.True(t, reg.Style(highlight.StateBold).IsZero())
}

func TestRegistrySet(t *testing.T) {
	t.Parallel()

	reg := highlight.NewStyleRegistry(nil)
	reg.Set(highlight.StateH1, highlight.Style{Foreground: "#123456"})

	assert.Equal(t, "#123456", reg.Style(highlight.StateH1).Foreground)
}

func TestRegistryReplaceAllIncomplete(t *testing.T) {
	t.Parallel()

	reg := highlight.NewStyleRegistry(highlight.DefaultStyles())

	err := reg.ReplaceAll(map[highlight.State]highlight.Style{
		highlight.StateNone: {},
	})
	require.ErrorIs(t, err, highlight.ErrIncompleteStyles)
	assert.ErrorContains(t, err, "heading-1")

	// A rejected replace leaves the registry untouched.
	assert.Equal(t, "#00316e", reg.Style(highlight.StateH1).Foreground)
}

func TestRegistryReplaceAll(t *testing.T) {
	t.Parallel()

	reg := highlight.NewStyleRegistry(nil)

	styles := highlight.DefaultStyles()
	styles[highlight.StateH1] = highlight.Style{Foreground: "#ff0000"}
	require.NoError(t, reg.ReplaceAll(styles))

	assert.Equal(t, "#ff0000", reg.Style(highlight.StateH1).Foreground)

	// The registry copied the mapping; later caller mutations are not
	// visible through it.
	styles[highlight.StateH2] = highlight.Style{Foreground: "#00ff00"}
	assert.NotEqual(t, "#00ff00", reg.Style(highlight.StateH2).Foreground)
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	t.Parallel()

	reg := highlight.NewStyleRegistry(highlight.DefaultStyles())

	snap := reg.Snapshot()
	snap[highlight.StateH1] = highlight.Style{Foreground: "#bad"}

	assert.Equal(t, "#00316e", reg.Style(highlight.StateH1).Foreground)
}

func TestHighlighterStyleAccess(t *testing.T) {
	t.Parallel()

	h := highlight.New(highlight.NewDocument("x"), highlight.DefaultOptions())

	// A new highlighter is seeded with the built-in defaults.
	assert.True(t, h.Styles().Style(highlight.StateH1).Bold)

	h.SetStyle(highlight.StateH1, highlight.Style{Foreground: "#101010"})
	assert.Equal(t, "#101010", h.Styles().Style(highlight.StateH1).Foreground)

	err := h.SetStyles(map[highlight.State]highlight.Style{highlight.StateNone: {}})
	assert.ErrorIs(t, err, highlight.ErrIncompleteStyles)

	require.NoError(t, h.SetStyles(highlight.DefaultStyles()))
	assert.Equal(t, "#00316e", h.Styles().Style(highlight.StateH1).Foreground)
}
