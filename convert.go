package prodex

// Converter transforms an HTML fragment into Markdown. Used to render
// rich description blocks for display.
type Converter interface {
	Convert(html string) (string, error)
}
