package webmd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// The rendering is purely structural: links, images and tables are
	// preserved, lines are not hard-wrapped, non-ASCII text passes
	// through verbatim.
	Convert(html string) (string, error)
}
