package webmd

import "context"

// Fetcher retrieves raw HTML from URLs. Only server-delivered HTML is
// supported; pages requiring JavaScript rendering are out of scope.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
