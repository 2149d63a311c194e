// Package token defines the units a message is made of: printable values,
// styles, and glyphs.
package token

import "github.com/arthur-debert/termsay/pkg/style"

// Kind tags the variant held by a Token
type Kind int

const (
	// KindValue is printable text (anything fmt can print)
	KindValue Kind = iota
	// KindStyle is an escape sequence with no printable text
	KindStyle
	// KindGlyph is a styled symbol, flattened before rendering
	KindGlyph
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindStyle:
		return "style"
	case KindGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Token is one unit of a message
type Token struct {
	Kind  Kind
	Value any
	Style style.Style
	Glyph style.Glyph
}

// V makes a value token
func V(v any) Token { return Token{Kind: KindValue, Value: v} }

// S makes a style token
func S(s style.Style) Token { return Token{Kind: KindStyle, Style: s} }

// G makes a glyph token
func G(g style.Glyph) Token { return Token{Kind: KindGlyph, Glyph: g} }

// Of converts a single argument. Styles and glyphs keep their meaning,
// tokens pass through and everything else becomes a value.
func Of(arg any) Token {
	switch v := arg.(type) {
	case Token:
		return v
	case style.Style:
		return S(v)
	case style.Glyph:
		return G(v)
	default:
		return V(v)
	}
}

// From converts a loose argument list, as accepted by the message API,
// into tokens. []Token arguments are spliced in place.
func From(args ...any) []Token {
	out := make([]Token, 0, len(args))
	for _, arg := range args {
		if list, ok := arg.([]Token); ok {
			out = append(out, list...)
			continue
		}
		out = append(out, Of(arg))
	}
	return out
}

// Flatten expands glyph tokens into their styles, their text and a reset,
// in place. Other tokens are kept as they are.
func Flatten(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != KindGlyph {
			out = append(out, t)
			continue
		}
		for _, s := range t.Glyph.Styles() {
			out = append(out, S(s))
		}
		out = append(out, V(t.Glyph.Text()), S(style.Reset))
	}
	return out
}
