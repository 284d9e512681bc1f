package webmd

// PageOutput is the final Markdown for one page, tagged with its source URL
// and the extraction strategy that produced it. Immutable once produced.
type PageOutput struct {
	URL      string
	Strategy string
	Markdown string // includes the per-page URL header
}

// Failure records a per-URL crawl failure with a human-readable reason.
type Failure struct {
	URL    string
	Reason string
}

// CrawlSummary holds the counts computed at the end of a crawl run.
// Read-only thereafter.
type CrawlSummary struct {
	PagesCrawled int
	PagesVisited int
	Failures     []Failure
}
