package highlight

// DefaultStyles returns the built-in style table. Every tag is present;
// tags that render as plain text carry the zero style.
func DefaultStyles() map[State]Style {
	heading := func(scale float64) Style {
		return Style{Foreground: "#00316e", Bold: true, Scale: scale}
	}
	code := Style{Background: "#dcdcdc", Monospace: true}

	return map[State]Style{
		StateNone: {},

		StateH1:          heading(1.6),
		StateH2:          heading(1.5),
		StateH3:          heading(1.4),
		StateH4:          heading(1.3),
		StateH5:          heading(1.2),
		StateH6:          heading(1.1),
		StateHeadlineEnd: {},

		StateList:           {Foreground: "#a3007b"},
		StateBlockQuote:     {Foreground: "#800000"},
		StateHorizontalRule: {Foreground: "#808080", Background: "#c0c0c0"},
		StateTable:          {Foreground: "#649449", Monospace: true},

		StateCodeBlock:    code,
		StateCodeCpp:      code,
		StateCodeJs:       code,
		StateCodeBlockEnd: code,

		StateFrontmatter:    {},
		StateFrontmatterEnd: {},

		StateComment:      {Foreground: "#a0a0a4"},
		StateMaskedSyntax: {Foreground: "#cccccc"},

		StateLink:          {Foreground: "#0080ff", Underline: true},
		StateImage:         {Foreground: "#00bf00", Background: "#e4ffe4"},
		StateItalic:        {Italic: true},
		StateBold:          {Bold: true},
		StateInlineCode:    code,
		StateTrailingSpace: {},

		StateCodeComment: {Foreground: "#808080"},
		StateCodeString:  {Foreground: "#008000"},
		StateCodeNumber:  {Foreground: "#808000"},
		StateCodeType:    {Foreground: "#000080"},
		StateCodeKeyword: {Foreground: "#00ffff"},
		StateCodePreproc: {Foreground: "#ff00ff"},
	}
}
