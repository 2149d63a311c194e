package topics

// Renderer formats topic content for display. format is the file
// extension of the topic, dot included.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer shows topics as they are written
type PlainRenderer struct{}

// Render returns content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
