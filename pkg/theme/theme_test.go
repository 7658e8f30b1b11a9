package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
	"github.com/yaklabco/gomdhilite/pkg/theme"
)

func TestParse(t *testing.T) {
	t.Parallel()

	doc := `
heading-1:
  foreground: "#ff0000"
  bold: true
code-block:
  background: "#101010"
  monospace: true
`

	th, err := theme.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, th.Overrides())

	styles := th.Styles()
	assert.Equal(t, "#ff0000", styles[highlight.StateH1].Foreground)
	assert.True(t, styles[highlight.StateH1].Bold)
	assert.Equal(t, "#101010", styles[highlight.StateCodeBlock].Background)

	// Untouched tags keep their defaults.
	assert.Equal(t, highlight.DefaultStyles()[highlight.StateList], styles[highlight.StateList])
}

func TestParseUnknownTag(t *testing.T) {
	t.Parallel()

	_, err := theme.Parse([]byte("headng-1:\n  bold: true\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTag)
}

func TestParseInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := theme.Parse([]byte("heading-1: [unclosed"))
	assert.Error(t, err)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	th, err := theme.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, th.Overrides())
	assert.Equal(t, highlight.DefaultStyles(), th.Styles())
}

func TestNilThemeStyles(t *testing.T) {
	t.Parallel()

	var th *theme.Theme
	assert.Equal(t, 0, th.Overrides())
	assert.Equal(t, highlight.DefaultStyles(), th.Styles())
}

func TestStylesCoverEveryTag(t *testing.T) {
	t.Parallel()

	th, err := theme.Parse([]byte("bold:\n  foreground: \"#123456\"\n"))
	require.NoError(t, err)

	reg := highlight.NewStyleRegistry(nil)
	assert.NoError(t, reg.ReplaceAll(th.Styles()))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  foreground: \"#00ff00\"\n"), 0o644))

	th, err := theme.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", th.Styles()[highlight.StateList].Foreground)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := theme.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := theme.Encode(highlight.DefaultStyles())
	require.NoError(t, err)

	// Declaration order, not alphabetical.
	assert.True(t, len(data) > 0)
	assert.Contains(t, string(data[:64]), "none:")

	th, err := theme.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, highlight.DefaultStyles(), th.Styles())
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	data, err := theme.Template()
	require.NoError(t, err)
	assert.Contains(t, string(data), "# gomdhilite theme")

	th, err := theme.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, len(highlight.States()), th.Overrides())
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	require.NoError(t, theme.WriteFile(path, []byte("bold:\n  bold: true\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bold:\n  bold: true\n", string(data))

	// Overwrite replaces the content and leaves no temp files behind.
	require.NoError(t, theme.WriteFile(path, []byte("list: {}\n")))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "list: {}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDiscoverExplicitWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(theme.EnvTheme, filepath.Join(dir, "env.yaml"))

	got, err := theme.Discover(dir, "explicit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "explicit.yaml", got)
}

func TestDiscoverEnvOverride(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	t.Setenv(theme.EnvTheme, envPath)

	got, err := theme.Discover(dir, "")
	require.NoError(t, err)
	assert.Equal(t, envPath, got)
}

func TestDiscoverProjectTheme(t *testing.T) {
	t.Setenv(theme.EnvTheme, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	themePath := filepath.Join(root, ".gomdhilite.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("bold: {}\n"), 0o644))

	workDir := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(workDir, 0o755))

	got, err := theme.Discover(workDir, "")
	require.NoError(t, err)
	assert.Equal(t, themePath, got)
}

func TestDiscoverStopsAtVCSRoot(t *testing.T) {
	t.Setenv(theme.EnvTheme, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".gomdhilite.yaml"), []byte("bold: {}\n"), 0o644))

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	got, err := theme.Discover(repo, "")
	require.NoError(t, err)
	assert.Empty(t, got, "theme above the VCS root must not be picked up")
}

func TestDiscoverUserTheme(t *testing.T) {
	t.Setenv(theme.EnvTheme, "")

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	userTheme := filepath.Join(configHome, "gomdhilite", "theme.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userTheme), 0o755))
	require.NoError(t, os.WriteFile(userTheme, []byte("bold: {}\n"), 0o644))

	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, ".git"), 0o755))

	got, err := theme.Discover(workDir, "")
	require.NoError(t, err)
	assert.Equal(t, userTheme, got)
}

func TestDiscoverNothingFound(t *testing.T) {
	t.Setenv(theme.EnvTheme, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, ".git"), 0o755))

	got, err := theme.Discover(workDir, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
