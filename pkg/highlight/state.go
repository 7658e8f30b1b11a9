package highlight

import "fmt"

// State identifies both the block state a line carries between passes and
// the style tag a span selects from the registry. One enumeration serves
// both roles so structural spans (a heading body, a fence interior) can
// reference the same tag the line state uses.
type State int

const (
	// StateNone marks a line with no structural classification. It is
	// also the registry's required no-op style entry.
	StateNone State = iota

	// Heading states. StateHeadlineEnd marks a setext underline line.
	StateH1
	StateH2
	StateH3
	StateH4
	StateH5
	StateH6
	StateHeadlineEnd

	// Structural states assigned by rules.
	StateList
	StateBlockQuote
	StateHorizontalRule
	StateTable

	// Fence states. StateCodeBlock doubles as the flat style tag painted
	// over fence interiors and indented code.
	StateCodeBlock
	StateCodeCpp
	StateCodeJs
	StateCodeBlockEnd

	// Frontmatter states.
	StateFrontmatter
	StateFrontmatterEnd

	StateComment
	StateMaskedSyntax

	// Span-only tags. These are never stored as a block state.
	StateLink
	StateImage
	StateItalic
	StateBold
	StateInlineCode
	StateTrailingSpace

	// Span-only tags emitted by the fence sub-highlighter.
	StateCodeComment
	StateCodeString
	StateCodeNumber
	StateCodeType
	StateCodeKeyword
	StateCodePreproc

	stateCount
)

// headingStates maps a heading level (1-6) to its state.
//
//nolint:gochecknoglobals // fixed lookup table
var headingStates = [6]State{StateH1, StateH2, StateH3, StateH4, StateH5, StateH6}

// stateNames holds the stable names used in theme files and CLI output.
//
//nolint:gochecknoglobals // fixed lookup table
var stateNames = map[State]string{
	StateNone:           "none",
	StateH1:             "heading-1",
	StateH2:             "heading-2",
	StateH3:             "heading-3",
	StateH4:             "heading-4",
	StateH5:             "heading-5",
	StateH6:             "heading-6",
	StateHeadlineEnd:    "headline-end",
	StateList:           "list",
	StateBlockQuote:     "block-quote",
	StateHorizontalRule: "horizontal-rule",
	StateTable:          "table",
	StateCodeBlock:      "code-block",
	StateCodeCpp:        "code-cpp",
	StateCodeJs:         "code-js",
	StateCodeBlockEnd:   "code-block-end",
	StateFrontmatter:    "frontmatter",
	StateFrontmatterEnd: "frontmatter-end",
	StateComment:        "comment",
	StateMaskedSyntax:   "masked-syntax",
	StateLink:           "link",
	StateImage:          "image",
	StateItalic:         "italic",
	StateBold:           "bold",
	StateInlineCode:     "inline-code",
	StateTrailingSpace:  "trailing-space",
	StateCodeComment:    "code-comment",
	StateCodeString:     "code-string",
	StateCodeNumber:     "code-number",
	StateCodeType:       "code-type",
	StateCodeKeyword:    "code-keyword",
	StateCodePreproc:    "code-preproc",
}

// String returns the stable name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState resolves a stable state name back to its value.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateNone, fmt.Errorf("unknown state name %q", name)
}

// States returns every state in declaration order.
func States() []State {
	all := make([]State, 0, int(stateCount))
	for s := StateNone; s < stateCount; s++ {
		all = append(all, s)
	}
	return all
}

// HeadingLevel returns 1-6 for heading states and 0 otherwise.
func (s State) HeadingLevel() int {
	switch s {
	case StateH1:
		return 1
	case StateH2:
		return 2
	case StateH3:
		return 3
	case StateH4:
		return 4
	case StateH5:
		return 5
	case StateH6:
		return 6
	default:
		return 0
	}
}

// IsHeading reports whether the state is one of the six heading levels.
func (s State) IsHeading() bool {
	return s.HeadingLevel() > 0
}

// InCodeFence reports whether a line with this state sits inside an open
// fence, generic or language-variant. The closing fence state is not an
// interior state.
func (s State) InCodeFence() bool {
	switch s {
	case StateCodeBlock, StateCodeCpp, StateCodeJs:
		return true
	default:
		return false
	}
}

// FenceLanguage returns the language tag of a language-variant fence
// state, or false for every other state.
func (s State) FenceLanguage() (string, bool) {
	switch s {
	case StateCodeCpp:
		return "cpp", true
	case StateCodeJs:
		return "js", true
	default:
		return "", false
	}
}

// IsFrontmatter reports whether the state belongs to a frontmatter
// region, opening chain or closing delimiter.
func (s State) IsFrontmatter() bool {
	return s == StateFrontmatter || s == StateFrontmatterEnd
}
