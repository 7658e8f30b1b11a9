package codescan

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language carries the token tables for one recognized fence language.
// Tables are data built once at package load; the scanner takes the
// first matching word, so order within a table is significant.
type Language struct {
	Tag      string
	Types    []string
	Keywords []string
	Preproc  []string
}

// languageTags maps linguist canonical names onto the tags the scanner
// has tables for.
//
//nolint:gochecknoglobals // Read-only lookup table.
var languageTags = map[string]string{
	"C++":        "cpp",
	"JavaScript": "js",
}

// fenceAliases covers fence info strings linguist does not register as
// aliases of the language name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fenceAliases = map[string]string{
	"cc":  "C++",
	"cxx": "C++",
	"mjs": "JavaScript",
}

// languages indexes the token tables by canonical tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var languages = map[string]*Language{
	"cpp": {
		Tag: "cpp",
		Types: []string{
			"QString", "QList", "QVector", "QHash", "QMap",
			"int", "float", "string", "double", "long", "vector",
			"short", "char", "void", "bool", "wchar_t",
			"class", "struct", "union", "enum",
		},
		Keywords: []string{
			"while", "if", "for", "do", "return", "else", "switch",
			"case", "break", "continue",
			"namespace", "using",
			"unsigned", "const", "static", "mutable", "auto",
			"asm", "volatile",
			"static_cast", "dynamic_cast", "reinterpret_cast", "const_cast",
			"nullptr",
			"public", "private", "protected", "signal", "slot",
			"new", "delete", "operator", "template", "this",
			"false", "true", "explicit", "sizeof",
			"try", "catch", "throw",
		},
		Preproc: []string{
			"ifndef", "ifdef", "include", "define", "endif",
		},
	},
	"js": {
		Tag: "js",
		Types: []string{
			"Array", "Boolean", "Date", "Error", "Function", "JSON",
			"Map", "Math", "Number", "Object", "Promise", "Proxy",
			"RegExp", "Set", "String", "Symbol", "WeakMap", "WeakSet",
		},
		Keywords: []string{
			"async", "await", "break", "case", "catch", "class",
			"const", "continue", "debugger", "default", "delete", "do",
			"else", "export", "extends", "false", "finally", "for",
			"function", "if", "import", "in", "instanceof", "let",
			"new", "null", "of", "return", "static", "super",
			"switch", "this", "throw", "true", "try", "typeof",
			"undefined", "var", "void", "while", "with", "yield",
		},
	},
}

// Lookup returns the token tables for a canonical tag from Normalize.
func Lookup(tag string) (*Language, bool) {
	lang, ok := languages[tag]
	return lang, ok
}

// Normalize resolves a fence info token to the canonical tag of a
// recognized language: "cpp", "c++" and "cc" all select cpp, "js",
// "javascript" and "node" select js. Unrecognized or empty info reports
// false, which callers treat as a generic fence.
func Normalize(info string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(info))
	if key == "" {
		return "", false
	}

	name, ok := fenceAliases[key]
	if !ok {
		if name, ok = enry.GetLanguageByAlias(key); !ok {
			return "", false
		}
	}

	tag, ok := languageTags[name]
	return tag, ok
}
