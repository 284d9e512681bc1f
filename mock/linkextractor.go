package mock

import "github.com/fwojciec/webmd"

var _ webmd.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of webmd.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]string, error) {
	return e.ExtractLinksFn(html)
}
