package crawl

import (
	"sync"

	"github.com/fwojciec/webmd"
	"github.com/fwojciec/webmd/bloom"
)

// Compile-time interface verification.
var _ webmd.URLFrontier = (*Frontier)(nil)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for admission dedup.
	frontierFalsePositiveRate = 0.01
)

// Frontier is an in-memory FIFO URL frontier with Bloom filter admission
// deduplication, so pages are visited in breadth-first discovery order.
// It is safe for concurrent use by multiple goroutines.
//
// The Bloom filter can produce false positives, so the orchestrator keeps
// an exact visited set as the authority for at-most-once processing; the
// filter only keeps re-discovered links from flooding the queue.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for admission deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a URL to the frontier.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestAndAdd(url) {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the next URL in discovery order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued before.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}
