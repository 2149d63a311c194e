package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/termsay/pkg/render"
	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
)

const reset = "\x1b[0m"

func TestRenderSeparators(t *testing.T) {
	tests := []struct {
		name        string
		args        []any
		wantPlain   string
		wantColored string
	}{
		{
			name:        "values only",
			args:        []any{"a", "b", "c"},
			wantPlain:   "a b c\n",
			wantColored: "a b c\n" + reset,
		},
		{
			name:        "style between values adds no separator",
			args:        []any{"a", style.Red, "b"},
			wantPlain:   "a b\n",
			wantColored: "a \x1b[31;1mb\n" + reset,
		},
		{
			name:        "consecutive styles",
			args:        []any{style.Bold, style.Blue, "x", style.Reset},
			wantPlain:   "x\n",
			wantColored: "\x1b[1m\x1b[34;1mx" + reset + "\n" + reset,
		},
		{
			name:        "trailing style after last value",
			args:        []any{"a", "b", style.Reset},
			wantPlain:   "a b\n",
			wantColored: "a b" + reset + "\n" + reset,
		},
		{
			name:        "no tokens",
			args:        nil,
			wantPlain:   "\n",
			wantColored: "\n" + reset,
		},
		{
			name:        "styles only",
			args:        []any{style.Green},
			wantPlain:   "\n",
			wantColored: "\x1b[32;1m\n" + reset,
		},
		{
			name:        "non string values",
			args:        []any{"count", 3, 1.5, true},
			wantPlain:   "count 3 1.5 true\n",
			wantColored: "count 3 1.5 true\n" + reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.Tokens(render.DefaultOptions(), tt.args...)
			assert.Equal(t, tt.wantPlain, got.Plain)
			assert.Equal(t, tt.wantColored, got.Colored)
		})
	}
}

func TestRenderRoundTripWithoutStyles(t *testing.T) {
	inputs := [][]any{
		{"hello"},
		{"a", 1, "b", 2},
		{"", "", ""},
		{"multi\nline", "text"},
	}

	for _, args := range inputs {
		got := render.Tokens(render.DefaultOptions(), args...)
		assert.Equal(t, got.Plain+reset, got.Colored)
	}
}

func TestRenderGlyph(t *testing.T) {
	got := render.Tokens(render.DefaultOptions(), "done", style.Check)

	assert.Equal(t, "done "+style.Check.Text()+"\n", got.Plain)
	assert.Equal(t, "done "+style.Green.Code()+style.Check.Text()+reset+"\n"+reset, got.Colored)
}

func TestRenderCustomSepAndEnd(t *testing.T) {
	opts := render.Options{Sep: ", ", End: ""}
	got := render.Tokens(opts, "x", "y", style.Bold, "z")

	assert.Equal(t, "x, y, z", got.Plain)
	assert.Equal(t, "x, y, \x1b[1mz"+reset, got.Colored)
}

func TestRenderTimestamp(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	opts := render.DefaultOptions()
	opts.Timestamp = true
	opts.Now = func() time.Time { return fixed }

	got := render.Tokens(opts, style.Bold, "a", "b")

	assert.Equal(t, "[2024-03-05 07:08:09] a b\n", got.Plain)
	assert.Equal(t, "[2024-03-05 07:08:09] \x1b[1ma b\n"+reset, got.Colored)
}

func TestRenderTimestampUsesWallClock(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Timestamp = true

	before := time.Now().Add(-time.Second)
	got := render.Tokens(opts, "x")

	stamp := strings.TrimSuffix(strings.SplitN(got.Plain, "] ", 2)[0], "]")
	parsed, err := time.ParseInLocation(render.TimestampLayout, strings.TrimPrefix(stamp, "["), time.Local)
	assert.NoError(t, err)
	assert.False(t, parsed.Before(before.Truncate(time.Second)))
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	tokens := []token.Token{token.V("a"), token.G(style.Cross)}
	_ = render.Render(tokens, render.DefaultOptions())

	assert.Len(t, tokens, 2)
	assert.Equal(t, token.KindGlyph, tokens[1].Kind)
}
