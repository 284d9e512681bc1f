// Package crawl provides the extraction cascade and the crawl
// orchestration engine: a scope-bounded, robots-compliant, deduplicating
// breadth-first traversal that turns a site into one Markdown artifact.
package crawl

import "github.com/fwojciec/webmd"

// Compile-time interface verification.
var _ webmd.Extractor = (*Cascade)(nil)

// Cascade tries extraction strategies in fixed order and returns the
// first sufficient result. A strategy signals insufficient content with an
// ENOCONTENT-coded error; any other error aborts the cascade.
type Cascade struct {
	strategies []webmd.Extractor
}

// NewCascade creates a Cascade over the given strategies, tried in order.
func NewCascade(strategies ...webmd.Extractor) *Cascade {
	return &Cascade{strategies: strategies}
}

// Extract runs the strategies in order, short-circuiting on the first
// success. When every strategy is exhausted it returns ENOCONTENT.
func (c *Cascade) Extract(rawHTML string) (*webmd.ExtractResult, error) {
	for _, s := range c.strategies {
		result, err := s.Extract(rawHTML)
		if err == nil {
			return result, nil
		}
		if webmd.ErrorCode(err) != webmd.ENOCONTENT {
			return nil, err
		}
	}
	return nil, webmd.Errorf(webmd.ENOCONTENT, "could not extract content using any strategy")
}
