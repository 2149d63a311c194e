// Package translit reduces text to its closest ASCII spelling. The sink
// uses it when a stream rejects the characters of a message.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Unknown replaces runes that have no ASCII spelling
const Unknown = "?"

// replacements covers the symbols termsay itself prints plus common
// typography that does not decompose to ASCII.
var replacements = map[rune]string{
	'…': "...",
	'✓': "ok",
	'✔': "ok",
	'❌': "ko",
	'✗': "ko",
	'✘': "ko",
	'█': "#",
	'→': "=>",
	'←': "<=",
	'∴': "::",
	'•': "*",
	'·': ".",
	'‘': "'",
	'’': "'",
	'‚': ",",
	'“': "\"",
	'”': "\"",
	'„': "\"",
	'«': "<<",
	'»': ">>",
	'–': "-",
	'—': "-",
	'−': "-",
	'×': "x",
	'ß': "ss",
	'æ': "ae",
	'Æ': "AE",
	'œ': "oe",
	'Œ': "OE",
	'ø': "o",
	'Ø': "O",
	'đ': "d",
	'Đ': "D",
	'ł': "l",
	'Ł': "L",
	'©': "(c)",
	'®': "(r)",
	'€': "EUR",
	' ': " ",
}

// ASCII decomposes s, drops combining marks and maps what is left onto
// ASCII. Escape sequences pass through untouched since they are ASCII.
func ASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if rep, ok := replacements[r]; ok {
			b.WriteString(rep)
		} else {
			b.WriteString(Unknown)
		}
	}
	return b.String()
}

// IsASCII reports whether s only holds ASCII runes
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
