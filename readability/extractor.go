// Package readability implements the secondary extraction strategy using
// go-readability over the raw HTML.
package readability

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/webmd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webmd.Extractor at compile time.
var _ webmd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// When the article carries a title it is prepended to the fragment as an
// <h1> heading. Fragments shorter than webmd.MinStrategyHTMLLen are
// rejected with ENOCONTENT.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "readability extraction failed: %v", err)
	}

	content := article.Content
	if n := utf8.RuneCountInString(content); n < webmd.MinStrategyHTMLLen {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "readability fragment too short (%d chars)", n)
	}

	if article.Title != "" {
		content = fmt.Sprintf("<h1>%s</h1>\n%s", article.Title, content)
	}

	return &webmd.ExtractResult{
		Strategy:    webmd.StrategyReadability,
		ContentHTML: content,
	}, nil
}
