package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmd"
)

// Compile-time interface verification.
var (
	_ webmd.Extractor = (*SelectorExtractor)(nil)
	_ webmd.Extractor = (*ContentAreaExtractor)(nil)
)

// SelectorExtractor extracts the first element matching a single CSS
// selector from a noise-stripped copy of the document. The element must
// carry at least webmd.MinSelectorTextLen characters of visible text.
type SelectorExtractor struct {
	selector string
	name     string
}

// NewMainExtractor selects the first <main> element.
func NewMainExtractor() *SelectorExtractor {
	return &SelectorExtractor{selector: "main", name: webmd.StrategyMain}
}

// NewArticleExtractor selects the first <article> element.
func NewArticleExtractor() *SelectorExtractor {
	return &SelectorExtractor{selector: "article", name: webmd.StrategyArticle}
}

// Extract returns the outer HTML of the first matching element.
func (e *SelectorExtractor) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	doc, err := parseClean(rawHTML)
	if err != nil {
		return nil, webmd.Errorf(webmd.EINVALID, "failed to parse HTML: %v", err)
	}
	return extractSelection(doc, e.selector, e.name)
}

// contentAreaSelectors are common content-area conventions, tried in fixed
// order until one yields sufficient content.
var contentAreaSelectors = []string{
	"#content", ".content", "[role='main']", ".main-content", "#main-content",
}

// ContentAreaExtractor tries the content-area selectors in order and
// returns the first sufficient match, named "selector:<css>".
type ContentAreaExtractor struct{}

// NewContentAreaExtractor creates a new ContentAreaExtractor.
func NewContentAreaExtractor() *ContentAreaExtractor {
	return &ContentAreaExtractor{}
}

// Extract returns the outer HTML of the first sufficient content area.
func (e *ContentAreaExtractor) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	doc, err := parseClean(rawHTML)
	if err != nil {
		return nil, webmd.Errorf(webmd.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range contentAreaSelectors {
		result, err := extractSelection(doc, selector, "selector:"+selector)
		if err == nil {
			return result, nil
		}
	}
	return nil, webmd.Errorf(webmd.ENOCONTENT, "no content-area selector matched")
}

// extractSelection applies a selector to an already noise-stripped
// document, re-strips noise within the match, and enforces the visible
// text floor.
func extractSelection(doc *goquery.Document, selector, name string) (*webmd.ExtractResult, error) {
	el := doc.Find(selector).First()
	if el.Length() == 0 {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "no element matches %q", selector)
	}

	stripNoise(el)

	if visibleTextLen(el) < webmd.MinSelectorTextLen {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "element %q has too little text", selector)
	}

	html, err := goquery.OuterHtml(el)
	if err != nil {
		return nil, err
	}

	return &webmd.ExtractResult{
		Strategy:    name,
		ContentHTML: html,
	}, nil
}
