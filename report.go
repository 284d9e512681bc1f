package webmd

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// PageMarkdown composes the final Markdown for one page: the source URL as
// a heading, a note naming the extraction strategy, then the content.
func PageMarkdown(pageURL, strategy, content string) string {
	return fmt.Sprintf("# %s\n\n*Extracted using: %s*\n\n%s", pageURL, strategy, content)
}

// PagePath returns the path component of a URL for use as a section
// header, or "/" when the path is empty.
func PagePath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}

// FormatReportHeader renders the title block of the aggregate artifact:
// the crawl seed, a generation timestamp, and a configuration echo.
func FormatReportHeader(seed string, cfg CrawlConfig, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Website Crawl: %s\n\n", seed)
	fmt.Fprintf(&b, "*Generated on %s*\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "*Crawl configuration: max_pages=%d, allow_subdomains=%t*\n\n", cfg.MaxPages, cfg.AllowSubdomains)
	return b.String()
}

// FormatPageSection renders one page of the aggregate artifact: a
// "## Page:" header naming the URL's path, the page Markdown, and a
// horizontal-rule separator.
func FormatPageSection(page *PageOutput) string {
	return fmt.Sprintf("\n\n## Page: %s\n\n%s\n\n---\n\n", PagePath(page.URL), page.Markdown)
}

// FormatSummary renders the trailing crawl summary section with counts
// and, if any, the list of failed URLs with their reasons.
func FormatSummary(s *CrawlSummary) string {
	var b strings.Builder
	b.WriteString("\n\n## Crawl Summary\n\n")
	fmt.Fprintf(&b, "* Total pages crawled: %d\n", s.PagesCrawled)
	fmt.Fprintf(&b, "* Total pages visited: %d\n", s.PagesVisited)
	fmt.Fprintf(&b, "* Failed pages: %d\n", len(s.Failures))

	if len(s.Failures) > 0 {
		b.WriteString("\n### Failed URLs\n\n")
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "* %s: %s\n", f.URL, f.Reason)
		}
	}
	return b.String()
}
