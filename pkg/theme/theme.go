// Package theme loads style tables for the highlighter from YAML files.
// A theme document maps state names to style descriptors and may cover
// any subset of them; applying a theme merges its overrides onto the
// built-in defaults, so a three-line theme is a complete theme.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdhilite/pkg/highlight"
)

// ErrUnknownTag reports a theme key that names no highlighter state.
var ErrUnknownTag = errors.New("unknown style tag")

// Theme is a partial style table decoded from a theme document.
type Theme struct {
	overrides map[highlight.State]highlight.Style
}

// Parse decodes a theme document. Unknown state names are an error so a
// typo does not silently fall back to the default style.
func Parse(data []byte) (*Theme, error) {
	var raw map[string]highlight.Style
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	overrides := make(map[highlight.State]highlight.Style, len(raw))
	for name, style := range raw {
		tag, err := highlight.ParseState(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, name)
		}
		overrides[tag] = style
	}

	return &Theme{overrides: overrides}, nil
}

// Load reads and parses the theme file at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Overrides returns the number of tags the theme restyles.
func (t *Theme) Overrides() int {
	if t == nil {
		return 0
	}
	return len(t.overrides)
}

// Styles returns the built-in default table with the theme's overrides
// applied. The result covers every tag, so it can be handed to
// Highlighter.SetStyles directly.
func (t *Theme) Styles() map[highlight.State]highlight.Style {
	styles := highlight.DefaultStyles()
	if t == nil {
		return styles
	}
	for tag, style := range t.overrides {
		styles[tag] = style
	}
	return styles
}

// Encode renders a style table as a theme document with tags in state
// declaration order rather than the alphabetical order a plain map
// marshal would give.
func Encode(styles map[highlight.State]highlight.Style) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, tag := range highlight.States() {
		style, ok := styles[tag]
		if !ok {
			continue
		}

		var key, val yaml.Node
		key.SetString(tag.String())
		if err := val.Encode(style); err != nil {
			return nil, fmt.Errorf("encode style %s: %w", tag, err)
		}
		root.Content = append(root.Content, &key, &val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
