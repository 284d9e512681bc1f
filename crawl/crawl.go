package crawl

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webmd"
)

// Crawler drives the single-page extraction pipeline and the site-wide
// breadth-first crawl. The zero value is not usable; Fetcher, Extractor,
// Converter and Links must be set. Robots and Sitemaps are optional.
type Crawler struct {
	Fetcher   webmd.Fetcher
	Extractor webmd.Extractor // usually a Cascade
	Converter webmd.Converter
	Links     webmd.LinkExtractor
	Robots    webmd.PolicyLoader  // nil disables the robots gate
	Sitemaps  webmd.SitemapSource // nil disables sitemap seeding

	// Now returns the report generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// ExtractPage runs the single-page pipeline: fetch, extraction cascade,
// Markdown conversion, line-level dedupe. The returned page's Markdown is
// prefixed with the source URL heading and the strategy note.
//
// Fails with EINVALID for a malformed or non-HTTP URL, EUNAVAILABLE when
// the page cannot be fetched, and ENOCONTENT when the cascade is
// exhausted.
func (c *Crawler) ExtractPage(ctx context.Context, rawURL string) (*webmd.PageOutput, error) {
	if err := validatePageURL(rawURL); err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, _, err := c.buildPage(rawURL, html)
	return page, err
}

// buildPage runs extraction, conversion and line dedupe over fetched
// HTML. The second return value is the content Markdown without the
// per-page header; the crawler fingerprints that for page-identity
// dedup so identical content at different URLs hashes equal.
func (c *Crawler) buildPage(pageURL, html string) (*webmd.PageOutput, string, error) {
	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return nil, "", err
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, "", err
	}

	markdown = NewLineDeduper().Dedupe(markdown)

	page := &webmd.PageOutput{
		URL:      pageURL,
		Strategy: extracted.Strategy,
		Markdown: webmd.PageMarkdown(pageURL, extracted.Strategy, markdown),
	}
	return page, markdown, nil
}

// CrawlSite crawls a site breadth-first from the config's seed URL and
// returns the aggregate Markdown artifact along with the run summary.
// When out is non-nil, the artifact is additionally streamed to it
// section by section as pages complete.
//
// Per-page failures are recorded in the summary, never raised; the only
// error returns are a malformed seed (EINVALID) and a failed write to
// out. A canceled context stops the traversal early; the summary then
// covers the pages processed so far.
func (c *Crawler) CrawlSite(ctx context.Context, cfg webmd.CrawlConfig, out io.Writer) (string, *webmd.CrawlSummary, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}

	scope, err := webmd.NewScope(cfg.Seed, cfg.AllowSubdomains)
	if err != nil {
		return "", nil, err
	}
	seed, ok := scope.Normalize(cfg.Seed, cfg.Seed)
	if !ok {
		return "", nil, webmd.Errorf(webmd.EINVALID, "seed URL %q is not crawlable", cfg.Seed)
	}

	policy := c.loadPolicy(ctx, cfg, scope.Origin())
	limiter := NewDomainLimiterForDelay(*cfg.Delay)

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed)
	c.seedFromSitemap(ctx, cfg, scope, seed, frontier)

	var (
		visited      = make(map[string]struct{})
		failures     []webmd.Failure
		pagesCrawled int
		pages        = NewPageSet()
		report       strings.Builder
	)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if err := c.emit(&report, out, webmd.FormatReportHeader(cfg.Seed, cfg, now())); err != nil {
		return "", nil, err
	}

	fail := func(url, reason string) {
		failures = append(failures, webmd.Failure{URL: url, Reason: reason})
	}

	for pagesCrawled < cfg.MaxPages && ctx.Err() == nil {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}

		// Visited is marked synchronously on dequeue, before any fetch,
		// so a URL queued twice is still processed at most once.
		if _, seen := visited[pageURL]; seen {
			continue
		}
		visited[pageURL] = struct{}{}

		if policy != nil && !policy.Allowed(pageURL) {
			fail(pageURL, "blocked by robots.txt")
			continue
		}

		if err := limiter.Wait(ctx, hostOf(pageURL)); err != nil {
			break // context canceled
		}

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			fail(pageURL, failureReason(err))
			continue
		}

		page, content, err := c.buildPage(pageURL, html)
		if err != nil {
			fail(pageURL, failureReason(err))
			continue
		}
		pagesCrawled++

		// A page whose content has already been seen contributes neither
		// a section nor outlinks: its links have presumably been seen too.
		if pages.Seen(content) {
			continue
		}

		if err := c.emit(&report, out, webmd.FormatPageSection(page)); err != nil {
			return "", nil, err
		}

		c.enqueueLinks(html, pageURL, scope, visited, frontier)
	}

	summary := &webmd.CrawlSummary{
		PagesCrawled: pagesCrawled,
		PagesVisited: len(visited),
		Failures:     failures,
	}
	if err := c.emit(&report, out, webmd.FormatSummary(summary)); err != nil {
		return "", nil, err
	}

	return report.String(), summary, nil
}

// loadPolicy loads the robots policy once per crawl. Load failures
// degrade to allow-all; they never fail the crawl.
func (c *Crawler) loadPolicy(ctx context.Context, cfg webmd.CrawlConfig, origin string) webmd.Policy {
	if cfg.IgnoreRobots || c.Robots == nil {
		return nil
	}
	policy, err := c.Robots.Load(ctx, origin)
	if err != nil {
		return webmd.AllowAll()
	}
	return policy
}

// seedFromSitemap pre-pushes sitemap-discovered URLs onto the frontier.
// Discovery failures are ignored; the seed URL alone is enough to crawl.
func (c *Crawler) seedFromSitemap(ctx context.Context, cfg webmd.CrawlConfig, scope *webmd.Scope, seed string, frontier *Frontier) {
	if !cfg.UseSitemap || c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, scope.Origin())
	if err != nil {
		return
	}
	for _, u := range urls {
		if normalized, ok := scope.Normalize(u, seed); ok {
			frontier.Push(normalized)
		}
	}
}

// enqueueLinks harvests the page's anchors and pushes in-scope,
// not-yet-visited URLs onto the frontier.
func (c *Crawler) enqueueLinks(html, pageURL string, scope *webmd.Scope, visited map[string]struct{}, frontier *Frontier) {
	links, err := c.Links.ExtractLinks(html)
	if err != nil {
		return
	}
	for _, link := range links {
		normalized, ok := scope.Normalize(link, pageURL)
		if !ok {
			continue
		}
		if _, seen := visited[normalized]; seen {
			continue
		}
		frontier.Push(normalized)
	}
}

// emit appends a report fragment to the in-memory aggregate and, when
// set, the caller's writer.
func (c *Crawler) emit(report *strings.Builder, out io.Writer, fragment string) error {
	report.WriteString(fragment)
	if out == nil {
		return nil
	}
	if _, err := io.WriteString(out, fragment); err != nil {
		return webmd.Errorf(webmd.EINTERNAL, "writing report: %v", err)
	}
	return nil
}

// validatePageURL rejects malformed and non-HTTP URLs with EINVALID.
func validatePageURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return webmd.Errorf(webmd.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return webmd.Errorf(webmd.EINVALID, "unsupported scheme %q in URL %q", u.Scheme, rawURL)
	}
	if u.Host == "" {
		return webmd.Errorf(webmd.EINVALID, "URL %q has no host", rawURL)
	}
	return nil
}

// hostOf returns the URL's host for rate limiting, or the URL itself if
// it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

// failureReason renders an error as the human-readable reason recorded in
// the crawl summary.
func failureReason(err error) string {
	if webmd.ErrorCode(err) != webmd.EINTERNAL {
		return webmd.ErrorMessage(err)
	}
	return err.Error()
}
