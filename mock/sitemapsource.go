package mock

import (
	"context"

	"github.com/fwojciec/webmd"
)

var _ webmd.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of webmd.SitemapSource.
type SitemapSource struct {
	DiscoverURLsFn func(ctx context.Context, origin string) ([]string, error)
}

func (s *SitemapSource) DiscoverURLs(ctx context.Context, origin string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, origin)
}
