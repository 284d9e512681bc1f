package webmd

import "context"

// SitemapSource discovers page URLs from a site's sitemap.
type SitemapSource interface {
	// DiscoverURLs finds page URLs from the sitemaps advertised by the
	// origin's robots.txt, falling back to /sitemap.xml. Returns an empty
	// slice (not nil) when no sitemap exists; discovery failures are
	// errors so callers can decide whether they are fatal.
	DiscoverURLs(ctx context.Context, origin string) ([]string, error)
}
