package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmd"
)

// Compile-time interface verification.
var _ webmd.Extractor = (*BodyExtractor)(nil)

// BodyExtractor is the strategy of last resort: it returns the <body>
// element after an aggressive removal pass for sidebar, comment, related
// and advertisement blocks. There is no minimum-length floor, but a body
// with no content at all still fails with ENOCONTENT so a blank document
// surfaces as an extraction failure rather than an empty page.
type BodyExtractor struct{}

// NewBodyExtractor creates a new BodyExtractor.
func NewBodyExtractor() *BodyExtractor {
	return &BodyExtractor{}
}

// Extract returns the cleaned <body> element.
func (e *BodyExtractor) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	doc, err := parseClean(rawHTML)
	if err != nil {
		return nil, webmd.Errorf(webmd.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "document has no body element")
	}

	body.Find(boilerplateSelectors).Remove()

	inner, err := body.Html()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(inner) == "" {
		return nil, webmd.Errorf(webmd.ENOCONTENT, "body element is empty")
	}

	html, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, err
	}

	return &webmd.ExtractResult{
		Strategy:    webmd.StrategyBodyFallback,
		ContentHTML: html,
	}, nil
}
