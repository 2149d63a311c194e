// Package render turns token sequences into the two renderings of a
// message: one carrying escape codes and one with plain text only.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/termsay/pkg/style"
	"github.com/arthur-debert/termsay/pkg/token"
)

// TimestampLayout formats the optional "[YYYY-MM-DD HH:MM:SS] " prefix
const TimestampLayout = "2006-01-02 15:04:05"

// Options controls how tokens are joined
type Options struct {
	// Sep goes between consecutive values
	Sep string
	// End terminates the message
	End string
	// Timestamp prefixes the message with the current time
	Timestamp bool
	// Now overrides the clock, mostly for tests
	Now func() time.Time
}

// DefaultOptions separates values with a space and ends with a newline
func DefaultOptions() Options {
	return Options{Sep: " ", End: "\n"}
}

// Rendering is the result of rendering one message
type Rendering struct {
	Colored string
	Plain   string
}

// Render produces both renderings of tokens. Styles only reach the colored
// rendering; separators are placed between values only, so styles never
// add spacing of their own. The colored rendering always ends with a reset.
func Render(tokens []token.Token, opts Options) Rendering {
	flat := token.Flatten(tokens)

	lastValue := -1
	for i, t := range flat {
		if t.Kind == token.KindValue {
			lastValue = i
		}
	}

	var colored, plain strings.Builder

	if opts.Timestamp {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		stamp := "[" + now().Format(TimestampLayout) + "] "
		colored.WriteString(stamp)
		plain.WriteString(stamp)
	}

	for i, t := range flat {
		switch t.Kind {
		case token.KindStyle:
			colored.WriteString(t.Style.Code())
		case token.KindValue:
			text := fmt.Sprint(t.Value)
			colored.WriteString(text)
			plain.WriteString(text)
			if i != lastValue {
				colored.WriteString(opts.Sep)
				plain.WriteString(opts.Sep)
			}
		}
	}

	colored.WriteString(opts.End)
	plain.WriteString(opts.End)
	colored.WriteString(style.Reset.Code())

	return Rendering{Colored: colored.String(), Plain: plain.String()}
}

// Tokens is Render for a loose argument list
func Tokens(opts Options, args ...any) Rendering {
	return Render(token.From(args...), opts)
}
