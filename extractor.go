package webmd

// Content selection thresholds. These are policy constants, not derived
// values; extractions shorter than these are rejected so that a trivially
// short fragment (a lone caption, say) cannot short-circuit a better
// fallback strategy.
const (
	// MinStrategyHTMLLen is the minimum HTML fragment length accepted from
	// the readability-style extractors.
	MinStrategyHTMLLen = 500

	// MinSelectorTextLen is the minimum visible text length accepted from
	// the tag and CSS-selector strategies.
	MinSelectorTextLen = 200

	// MinDedupeLineLen is the minimum trimmed line length at which the
	// line-level deduplicator starts suppressing repeats.
	MinDedupeLineLen = 40
)

// Extraction strategy names as recorded in ExtractResult and PageOutput.
const (
	StrategyTrafilatura  = "trafilatura"
	StrategyReadability  = "readability"
	StrategyMain         = "main"
	StrategyArticle      = "article"
	StrategyBodyFallback = "body-fallback"
)

// ExtractResult holds the main-content fragment chosen from an HTML page.
type ExtractResult struct {
	// Strategy names the strategy that produced the fragment: one of the
	// Strategy* constants or "selector:<css>" for a content-area selector.
	Strategy string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// A single strategy and the full cascade both satisfy this interface; a
// strategy that cannot produce sufficient content returns an
// ENOCONTENT-coded error so the cascade can move on to the next one.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}
