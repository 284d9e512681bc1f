package crawl

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/webmd"
	"golang.org/x/sync/errgroup"
)

// defaultBatchConcurrency bounds concurrent fetches when the caller
// doesn't specify a limit.
const defaultBatchConcurrency = 10

// BatchProgress reports progress during batch page extraction.
type BatchProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// BatchProgressFunc is called from a single goroutine as pages complete.
type BatchProgressFunc func(BatchProgress)

// batchResult holds the outcome of processing one URL.
type batchResult struct {
	position int
	url      string
	page     *webmd.PageOutput
	err      error
}

// ExtractPages runs the single-page pipeline over an explicit URL list
// with a bounded worker pool. Results come back in input order; URLs that
// fail are skipped and reported through the progress callback. Useful for
// callers that already know their URLs (e.g. from a sitemap) and don't
// need link discovery.
func (c *Crawler) ExtractPages(ctx context.Context, urls []string, concurrency int, progress BatchProgressFunc) ([]*webmd.PageOutput, error) {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	resultCh := make(chan batchResult, len(urls))
	total := len(urls)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				page, err := c.ExtractPage(gctx, u)
				resultCh <- batchResult{position: i, url: u, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in position order
	results := make([]batchResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress != nil {
			progress(BatchProgress{
				URL:       result.url,
				Completed: int(completed.Load()),
				Total:     total,
				Error:     result.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages := make([]*webmd.PageOutput, 0, total)
	for _, result := range results {
		if result.err != nil {
			continue
		}
		pages = append(pages, result.page)
	}
	return pages, nil
}
