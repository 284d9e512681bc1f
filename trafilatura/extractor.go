// Package trafilatura implements the primary extraction strategy using
// go-trafilatura's readability heuristics over the raw HTML.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/webmd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webmd.Extractor at compile time.
var _ webmd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Fragments shorter than webmd.MinStrategyHTMLLen are rejected with
// ENOCONTENT so the cascade can fall through to the next strategy.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webmd.Errorf(webmd.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  true,
		IncludeLinks:   true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "trafilatura extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if n := utf8.RuneCountInString(contentHTML); n < webmd.MinStrategyHTMLLen {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "trafilatura fragment too short (%d chars)", n)
	}

	return &webmd.ExtractResult{
		Strategy:    webmd.StrategyTrafilatura,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
