package topics

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/termsay/pkg/logging"
)

// GlamourRenderer renders markdown topics with glamour. Other formats are
// left alone.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty"...), a
	// path to a style file, or "auto" to follow the terminal background.
	Style string
	// Width wraps lines at this column; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer renders with the style detected from the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewPlainGlamourRenderer renders markdown structure without colors, for
// output that is not a terminal.
func NewPlainGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "notty"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render implements Renderer. Rendering failures fall back to the raw
// content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	logger := logging.GetLogger("topics")

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		logger.Debug().Err(err).Str("style", r.Style).Msg("Cannot create markdown renderer")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Cannot render markdown")
		return content
	}
	return rendered
}
