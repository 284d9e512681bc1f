package mock

import "github.com/fwojciec/webmd"

var _ webmd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webmd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webmd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webmd.ExtractResult, error) {
	return e.ExtractFn(html)
}
