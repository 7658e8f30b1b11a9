// Package codescan highlights tokens on code lines inside recognized
// fence languages. It is a lexical approximation, not a tokenizer: it
// picks out comments, string and numeric literals, and three word tables
// per language, and intentionally ignores escape sequences, raw strings
// and nested comments.
package codescan

import "strings"

// Kind classifies a scanned token.
type Kind int

const (
	KindComment Kind = iota
	KindString
	KindNumber
	KindType
	KindKeyword
	KindPreproc
)

// Token marks one highlighted byte range of a code line.
type Token struct {
	Start int
	Len   int
	Kind  Kind
}

// Scan tokenizes one line known to sit inside a fence of lang. Tokens
// come back in text order and never overlap. A line comment consumes the
// rest of the line; so do an unterminated block comment and an
// unterminated string literal, which also stop the scan.
func Scan(text string, lang *Language) []Token {
	if text == "" || lang == nil {
		return nil
	}

	var toks []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			return append(toks, Token{Start: i, Len: len(text) - i, Kind: KindComment})

		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			rel := strings.Index(text[i+2:], "*/")
			if rel < 0 {
				return append(toks, Token{Start: i, Len: len(text) - i, Kind: KindComment})
			}
			end := i + 2 + rel + 2
			toks = append(toks, Token{Start: i, Len: end - i, Kind: KindComment})
			i = end

		case c == '"' || c == '\'':
			end, ok := closingQuote(text, i)
			if !ok {
				return append(toks, Token{Start: i, Len: len(text) - i, Kind: KindString})
			}
			toks = append(toks, Token{Start: i, Len: end - i, Kind: KindString})
			i = end

		case isDigit(c):
			end := digitRunEnd(text, i)
			if !embeddedInWord(text, i, end) {
				toks = append(toks, Token{Start: i, Len: end - i, Kind: KindNumber})
			}
			i = end

		case isLetter(c):
			tok, ok := lang.wordAt(text, i)
			if !ok {
				// A table word strictly inside a letter run would be
				// rejected as an identifier fragment anyway.
				i = letterRunEnd(text, i)
				continue
			}
			toks = append(toks, tok)
			i = tok.Start + tok.Len

		default:
			i++
		}
	}
	return toks
}

// wordAt returns the first table word starting at i. A word does not
// count when the byte before or after it is alphabetic; that would make
// it a fragment of a longer identifier.
func (l *Language) wordAt(text string, i int) (Token, bool) {
	if i > 0 && isLetter(text[i-1]) {
		return Token{}, false
	}

	sets := []struct {
		words []string
		kind  Kind
	}{
		{l.Types, KindType},
		{l.Keywords, KindKeyword},
		{l.Preproc, KindPreproc},
	}
	for _, set := range sets {
		for _, w := range set.words {
			if !strings.HasPrefix(text[i:], w) {
				continue
			}
			if end := i + len(w); end < len(text) && isLetter(text[end]) {
				continue
			}
			return Token{Start: i, Len: len(w), Kind: set.kind}, true
		}
	}
	return Token{}, false
}

// closingQuote returns the offset one past the quote closing the literal
// opened at i, or false when the line ends first.
func closingQuote(text string, i int) (int, bool) {
	for j := i + 1; j < len(text); j++ {
		if text[j] == text[i] {
			return j + 1, true
		}
	}
	return 0, false
}

// embeddedInWord reports whether the digit run [start, end) extends an
// identifier on either side, like the 32 in int32.
func embeddedInWord(text string, start, end int) bool {
	if start > 0 && isLetter(text[start-1]) {
		return true
	}
	return end < len(text) && isLetter(text[end])
}

func digitRunEnd(text string, i int) int {
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	return i
}

func letterRunEnd(text string, i int) int {
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
