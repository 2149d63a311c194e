package style

import "runtime"

// UnicodeSupported is fixed at start up. Windows consoles are assumed to
// lack the glyphs termsay uses, every other platform gets Unicode.
var UnicodeSupported = runtime.GOOS != "windows"

// Glyph is a symbol with a Unicode and an ASCII rendering and the styles
// it is drawn with.
type Glyph struct {
	name    string
	unicode string
	ascii   string
	styles  []Style
	text    string
}

// NewGlyph creates a glyph whose text follows UnicodeSupported.
func NewGlyph(name, unicode, ascii string, styles ...Style) Glyph {
	return newGlyph(UnicodeSupported, name, unicode, ascii, styles...)
}

func newGlyph(unicodeOK bool, name, unicode, ascii string, styles ...Style) Glyph {
	text := ascii
	if unicodeOK {
		text = unicode
	}
	return Glyph{
		name:    name,
		unicode: unicode,
		ascii:   ascii,
		styles:  append([]Style(nil), styles...),
		text:    text,
	}
}

// Name returns the glyph name
func (g Glyph) Name() string { return g.name }

// Text returns the rendering selected at initialization
func (g Glyph) Text() string { return g.text }

// Unicode returns the preferred rendering
func (g Glyph) Unicode() string { return g.unicode }

// ASCII returns the fallback rendering
func (g Glyph) ASCII() string { return g.ascii }

// Styles returns the styles the glyph is drawn with
func (g Glyph) Styles() []Style {
	return append([]Style(nil), g.styles...)
}

// String renders the glyph with its styles, reset before and after.
func (g Glyph) String() string {
	return Reset.code + Compose(g.styles...) + g.text + Reset.code
}

// Built-in glyphs
var (
	Ellipsis = NewGlyph("ellipsis", "…", "...", Reset)
	Check    = NewGlyph("check", "✓", "ok", Green)
	Cross    = NewGlyph("cross", "❌", "ko", Red)
	Block    = NewGlyph("block", "█", "#", Reset)
	Arrow    = NewGlyph("arrow", "→", "=>", Bold)
	Triangle = NewGlyph("triangle", "∴", "::", Bold)
)

// Glyphs returns the built-in glyphs
func Glyphs() []Glyph {
	return []Glyph{Ellipsis, Check, Cross, Block, Arrow, Triangle}
}
