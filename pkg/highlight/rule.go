package highlight

import "regexp"

// Rule maps a compiled pattern to a style tag. Rules are immutable after
// construction and evaluated in table order; ordering is a deliberate
// tie-break (italic rules run before bold so bold paints over).
type Rule struct {
	// Tag is the style painted on matches and, with SetsBlockState, the
	// block state assigned to the line.
	Tag State

	// Pattern is searched globally; every non-overlapping match is
	// painted.
	Pattern *regexp.Regexp

	// CapturingGroup selects the sub-group painted with Tag. When it is
	// positive, the MaskedGroup is painted masked-syntax first so
	// delimiters recede behind the content. Zero paints the whole match
	// with Tag and masks nothing.
	CapturingGroup int

	// MaskedGroup is the group painted masked-syntax before the capture.
	// Zero means the whole match.
	MaskedGroup int

	// SetsBlockState assigns Tag as the line's block state when the
	// pattern matches at least once.
	SetsBlockState bool

	// SkipIfStateSet drops the rule once any block state has been
	// assigned earlier in the same pass.
	SkipIfStateSet bool
}

// Options configure a Highlighter at construction.
type Options struct {
	// FullyHighlightedBlockQuote styles the whole quoted line rather
	// than only the run of leading > markers.
	FullyHighlightedBlockQuote bool
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{}
}

// preRules builds the pre-structural table: reference-link definitions,
// list items, block quotes and horizontal rules. It runs before heading
// and fence detection.
func preRules(opts Options) []Rule {
	blockQuote := `^\s*(>\s*)+`
	if opts.FullyHighlightedBlockQuote {
		blockQuote = `^\s*(>\s*.+)`
	}

	return []Rule{
		{
			Tag:     StateMaskedSyntax,
			Pattern: regexp.MustCompile(`^\[.+?\]: \w+://.+$`),
		},
		{
			Tag:            StateList,
			Pattern:        regexp.MustCompile(`^\s*[-*+]\s`),
			SetsBlockState: true,
		},
		{
			Tag:            StateList,
			Pattern:        regexp.MustCompile(`^\s*\d+\.\s`),
			SetsBlockState: true,
		},
		{
			Tag:     StateBlockQuote,
			Pattern: regexp.MustCompile(blockQuote),
		},
		{
			Tag:     StateHorizontalRule,
			Pattern: regexp.MustCompile(`^([*\-_]\s?){3,}$`),
		},
	}
}

// postRules builds the post-structural table: emphasis, links, images,
// trailing whitespace, inline code, indented code, inline comments and
// tables. It runs after heading detection so emphasis inside headings
// still paints.
func postRules() []Rule {
	return []Rule{
		// Italic before bold so bold can overwrite. The star variant
		// refuses a space after the opening star so list markers do not
		// read as emphasis.
		{
			Tag:            StateItalic,
			Pattern:        regexp.MustCompile(`(?:^|[^*])(?:\*([^* ][^*]*?)\*)(?:[^*]|$)`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateItalic,
			Pattern:        regexp.MustCompile(`\b_([^_]+)_\b`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateBold,
			Pattern:        regexp.MustCompile(`\B\*{2}(.+?)\*{2}\B`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateBold,
			Pattern:        regexp.MustCompile(`\b__(.+?)__\b`),
			CapturingGroup: 1,
		},
		// Strikethrough renders fully de-emphasized, delimiters and
		// content alike.
		{
			Tag:            StateMaskedSyntax,
			Pattern:        regexp.MustCompile(`~{2}(.+?)~{2}`),
			CapturingGroup: 1,
		},
		// Bare URL, no markup around it.
		{
			Tag:     StateLink,
			Pattern: regexp.MustCompile(`\b\w+?://\S+`),
		},
		// URL in angle brackets.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`<(\w+?://\S+)>`),
			CapturingGroup: 1,
		},
		// Angle-bracket link recognized by a dot in the body.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile("<([^\\s`][^`]*?\\.[^`]*?[^\\s`])>"),
			CapturingGroup: 1,
		},
		// Titled link.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`\[([^\[\]]+)\]\((\S+|.+?)\)\B`),
			CapturingGroup: 1,
		},
		// Empty-title link.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`\[\]\((.+?)\)`),
			CapturingGroup: 1,
		},
		// Email link.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`<(.+?@.+?)>`),
			CapturingGroup: 1,
		},
		// Reference-style link usage.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`\[(.+?)\]\[.+?\]`),
			CapturingGroup: 1,
		},
		// Image with alt text.
		{
			Tag:            StateImage,
			Pattern:        regexp.MustCompile(`!\[(.+?)\]\(.+?\)`),
			CapturingGroup: 1,
		},
		// Image without alt text.
		{
			Tag:            StateImage,
			Pattern:        regexp.MustCompile(`!\[\]\((.+?)\)`),
			CapturingGroup: 1,
		},
		// Image wrapped in a link.
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`\[!\[(.+?)\]\(.+?\)\]\(.+?\)`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateLink,
			Pattern:        regexp.MustCompile(`\[!\[\]\(.+?\)\]\((.+?)\)`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateTrailingSpace,
			Pattern:        regexp.MustCompile(`( +)$`),
			CapturingGroup: 1,
		},
		{
			Tag:            StateInlineCode,
			Pattern:        regexp.MustCompile("`(.+?)`"),
			CapturingGroup: 1,
		},
		// Indented code, four spaces or a tab. Skipped when an earlier
		// rule already assigned a block state, so indented list items
		// stay lists.
		{
			Tag:            StateCodeBlock,
			Pattern:        regexp.MustCompile(`^((\t)|( {4,})).+$`),
			SkipIfStateSet: true,
		},
		// Inline comment, open and close on one line.
		{
			Tag:            StateComment,
			Pattern:        regexp.MustCompile(`<!--(.+?)-->`),
			CapturingGroup: 1,
		},
		// RMarkdown comment line.
		{
			Tag:     StateComment,
			Pattern: regexp.MustCompile(`^\[.+?\]: # \(.+?\)$`),
		},
		{
			Tag:     StateTable,
			Pattern: regexp.MustCompile(`^\|.+?\|$`),
		},
	}
}
