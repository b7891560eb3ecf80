package earnings

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content, such as a rendered answer, into
	// Markdown.
	Convert(html string) (string, error)
}

// MarkdownRenderer renders Markdown for display in a terminal.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
