package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
)

func TestFrom(t *testing.T) {
	tokens := token.From("a", style.Bold, style.Check, 42, token.V("x"), []token.Token{token.S(style.Red), token.V("y")})

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []token.Kind{
		token.KindValue, token.KindStyle, token.KindGlyph, token.KindValue,
		token.KindValue, token.KindStyle, token.KindValue,
	}, kinds)
	assert.Equal(t, style.Bold, tokens[1].Style)
	assert.Equal(t, "check", tokens[2].Glyph.Name())
	assert.Equal(t, 42, tokens[3].Value)
}

func TestFromEmpty(t *testing.T) {
	assert.Empty(t, token.From())
}

func TestFlatten(t *testing.T) {
	flat := token.Flatten([]token.Token{token.V("done"), token.G(style.Check), token.V("!")})

	assert.Equal(t, []token.Token{
		token.V("done"),
		token.S(style.Green),
		token.V(style.Check.Text()),
		token.S(style.Reset),
		token.V("!"),
	}, flat)
}

func TestFlattenMultiStyleGlyph(t *testing.T) {
	g := style.NewGlyph("warn", "⚠", "!", style.Bold, style.Yellow)
	flat := token.Flatten([]token.Token{token.G(g)})

	assert.Len(t, flat, 4)
	assert.Equal(t, style.Bold, flat[0].Style)
	assert.Equal(t, style.Yellow, flat[1].Style)
	assert.Equal(t, token.KindValue, flat[2].Kind)
	assert.Equal(t, style.Reset, flat[3].Style)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "value", token.KindValue.String())
	assert.Equal(t, "style", token.KindStyle.String())
	assert.Equal(t, "glyph", token.KindGlyph.String())
	assert.Equal(t, "unknown", token.Kind(9).String())
}
