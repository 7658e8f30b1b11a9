package highlight

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrIncompleteStyles reports a replace-all mapping that does not cover
// every tag the classifier can emit.
var ErrIncompleteStyles = errors.New("style mapping does not cover every tag")

// Style describes how a tag renders. The classifier never interprets it;
// hosts pick the fields they can honor. A terminal renderer uses colors
// and weight, a GUI host may also honor Monospace and Scale.
type Style struct {
	// Foreground and Background are hex colors ("#rrggbb"); empty means
	// the host default.
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`

	Bold      bool `yaml:"bold,omitempty"`
	Italic    bool `yaml:"italic,omitempty"`
	Underline bool `yaml:"underline,omitempty"`
	Strike    bool `yaml:"strike,omitempty"`

	// Monospace asks for a fixed-width face where the host has one.
	Monospace bool `yaml:"monospace,omitempty"`

	// Scale is a relative font size for GUI hosts; zero means default.
	Scale float64 `yaml:"scale,omitempty"`
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

// StyleRegistry maps every style tag to its descriptor. The classifier
// holds one and never mutates it; hosts reconfigure it through Set and
// ReplaceAll only.
type StyleRegistry struct {
	mu     sync.RWMutex
	styles map[State]Style
}

// NewStyleRegistry returns a registry seeded with a copy of styles.
func NewStyleRegistry(styles map[State]Style) *StyleRegistry {
	r := &StyleRegistry{styles: make(map[State]Style, len(styles))}
	for tag, s := range styles {
		r.styles[tag] = s
	}
	return r
}

// Style returns the descriptor for tag, or the zero style when the tag
// was never configured.
func (r *StyleRegistry) Style(tag State) Style {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.styles[tag]
}

// Set replaces the descriptor of a single tag.
func (r *StyleRegistry) Set(tag State, s Style) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.styles[tag] = s
}

// ReplaceAll swaps the whole table. The mapping must cover every tag,
// including StateNone; otherwise the registry is left untouched and the
// missing tags are reported.
func (r *StyleRegistry) ReplaceAll(styles map[State]Style) error {
	var missing []string
	for _, tag := range States() {
		if _, ok := styles[tag]; !ok {
			missing = append(missing, tag.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %v", ErrIncompleteStyles, missing)
	}

	next := make(map[State]Style, len(styles))
	for tag, s := range styles {
		next[tag] = s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.styles = next

	return nil
}

// Snapshot returns a copy of the current table.
func (r *StyleRegistry) Snapshot() map[State]Style {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[State]Style, len(r.styles))
	for tag, s := range r.styles {
		out[tag] = s
	}
	return out
}
