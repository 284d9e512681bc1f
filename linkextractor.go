package webmd

// LinkExtractor harvests anchor links from HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the href targets of all <a>
	// elements. Empty hrefs, bare fragments, and non-HTTP links
	// (javascript:, mailto:, tel:, data:) are skipped. Targets are
	// returned as written in the document; resolving and scope-filtering
	// them is the caller's concern (see Scope.Normalize).
	ExtractLinks(html string) ([]string, error)
}
