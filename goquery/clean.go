// Package goquery implements the structural extraction strategies (semantic
// tags, content-area selectors, and the body fallback) and anchor link
// harvesting on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// noiseTags are stripped from the working DOM before any structural
// strategy selects content.
var noiseTags = []string{
	"script", "style", "nav", "footer", "aside",
	"noscript", "form", "svg", "iframe", "header",
}

// boilerplateSelectors are removed in the body fallback's aggressive
// cleaning pass, on top of the regular noise tags.
const boilerplateSelectors = ".sidebar, .comments, .related, .recommended, .ad, .advertisement"

// parseClean parses raw HTML and strips noise tags from the document.
func parseClean(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	stripNoise(doc.Selection)
	return doc, nil
}

// stripNoise removes all noise tag occurrences within the selection.
func stripNoise(sel *goquery.Selection) {
	for _, tag := range noiseTags {
		sel.Find(tag).Remove()
	}
}

// visibleTextLen returns the length in runes of the selection's text
// content with surrounding whitespace trimmed. Thresholds count
// characters, not bytes, so non-ASCII content is measured the same as
// ASCII.
func visibleTextLen(sel *goquery.Selection) int {
	return utf8.RuneCountInString(strings.TrimSpace(sel.Text()))
}
