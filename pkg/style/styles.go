// Package style defines the terminal styles and glyphs termsay messages are
// built from.
//
// Styles are named ANSI SGR sequences kept in a fixed, globally shared
// registry:
//
//	style.Red.Code()         // "\x1b[31;1m"
//	style.MustLookup("bold") // same as style.Bold
//
// Glyphs are small symbols (check mark, cross, ellipsis...) with a Unicode
// and an ASCII rendering. The rendering is picked once, when the package is
// initialized, from the platform's character support.
package style

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/termsay/pkg/errors"
)

// Style is one terminal rendering attribute (a color or a text decoration).
// Styles are immutable values; the zero Style renders nothing.
type Style struct {
	name string
	code string
}

// Name returns the registry name of the style
func (s Style) Name() string { return s.name }

// Code returns the escape sequence of the style
func (s Style) Code() string { return s.code }

// String returns the escape sequence so styles can be printed directly
func (s Style) String() string { return s.code }

// IsZero reports whether s is the zero Style
func (s Style) IsZero() bool { return s.code == "" }

// sgr builds "ESC [ a ; b m" from fatih/color attributes
func sgr(attrs ...color.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = strconv.Itoa(int(a))
	}
	return termenv.CSI + strings.Join(parts, ";") + "m"
}

func define(name string, attrs ...color.Attribute) Style {
	s := Style{name: name, code: sgr(attrs...)}
	registry[name] = s
	order = append(order, name)
	return s
}

var (
	registry = map[string]Style{}
	order    []string
)

// Text styles
var (
	Reset     = define("reset", color.Reset)
	Bold      = define("bold", color.Bold)
	Faint     = define("faint", color.Faint)
	Standout  = define("standout", color.Italic)
	Underline = define("underline", color.Underline)
	Blink     = define("blink", color.BlinkSlow)
	Overline  = define("overline", color.BlinkRapid)
)

// Major colors
var (
	Black     = define("black", color.FgBlack)
	DarkRed   = define("darkred", color.FgRed)
	DarkGreen = define("darkgreen", color.FgGreen)
	Brown     = define("brown", color.FgYellow)
	DarkBlue  = define("darkblue", color.FgBlue)
	Purple    = define("purple", color.FgMagenta)
	Teal      = define("teal", color.FgCyan)
	LightGray = define("lightgray", color.FgWhite)
)

// Minor colors, the bright variants of the major ones
var (
	DarkGray  = define("darkgray", color.FgBlack, color.Bold)
	Red       = define("red", color.FgRed, color.Bold)
	Green     = define("green", color.FgGreen, color.Bold)
	Yellow    = define("yellow", color.FgYellow, color.Bold)
	Blue      = define("blue", color.FgBlue, color.Bold)
	Fuchsia   = define("fuchsia", color.FgMagenta, color.Bold)
	Turquoise = define("turquoise", color.FgCyan, color.Bold)
	White     = define("white", color.FgWhite, color.Bold)
)

// aliases resolve to a registered style name
var aliases = map[string]string{
	"italic":      "standout",
	"dim":         "faint",
	"darkyellow":  "brown",
	"darkmagenta": "purple",
	"darkcyan":    "teal",
	"gray":        "lightgray",
	"grey":        "lightgray",
	"darkgrey":    "darkgray",
	"magenta":     "fuchsia",
	"fuscia":      "fuchsia",
	"cyan":        "turquoise",
}

// Lookup returns the style registered under name or one of its aliases.
func Lookup(name string) (Style, error) {
	key := strings.ToLower(name)
	if target, ok := aliases[key]; ok {
		key = target
	}
	if s, ok := registry[key]; ok {
		return s, nil
	}
	return Style{}, errors.Newf(errors.ErrUnknownStyle, "unknown style %q", name).
		WithDetail("style", name)
}

// MustLookup is Lookup for names known at development time. An unknown name
// is a programming error and panics.
func MustLookup(name string) Style {
	s, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered style names in declaration order. Aliases
// are not included.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// Compose concatenates the codes of styles in order.
func Compose(styles ...Style) string {
	var b strings.Builder
	for _, s := range styles {
		b.WriteString(s.code)
	}
	return b.String()
}

// Colorize wraps phrase in the space separated styles of names, resetting
// before and after. It panics on an unknown style name.
func Colorize(names, phrase string) string {
	fields := strings.Fields(names)
	styles := make([]Style, len(fields))
	for i, name := range fields {
		styles[i] = MustLookup(name)
	}
	return Reset.code + Compose(styles...) + phrase + Reset.code
}
