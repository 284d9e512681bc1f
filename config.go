package webmd

import "time"

// Crawl configuration defaults.
const (
	DefaultMaxPages = 100
	DefaultDelay    = 500 * time.Millisecond
)

// CrawlConfig holds the immutable configuration for one crawl run.
// It is set at crawl start and never mutated afterwards. The zero value
// (plus a seed) is a safe configuration: robots.txt is respected and
// fetches are paced by DefaultDelay.
type CrawlConfig struct {
	// Seed is the URL the crawl starts from.
	Seed string

	// AllowSubdomains widens the crawl scope from the seed's registered
	// domain to any host sharing that domain as a suffix.
	AllowSubdomains bool

	// MaxPages caps the number of pages processed successfully through
	// extraction. Robots-blocked and already-visited skips don't count.
	MaxPages int

	// Delay is the politeness pause between successive fetches to one
	// host. nil means DefaultDelay; an explicit zero disables pacing.
	Delay *time.Duration

	// IgnoreRobots disables the robots.txt gate. The zero value is
	// compliant: robots.txt is respected unless explicitly ignored.
	// Policy load failures degrade to allow-all rather than failing
	// the crawl.
	IgnoreRobots bool

	// UseSitemap pre-seeds the frontier from the site's sitemap, when one
	// can be discovered. Traversal semantics are otherwise unchanged.
	UseSitemap bool
}

// WithDefaults returns a copy of the config with unset values replaced by
// defaults: MaxPages=100, Delay=500ms.
func (c CrawlConfig) WithDefaults() CrawlConfig {
	if c.MaxPages == 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.Delay == nil {
		d := DefaultDelay
		c.Delay = &d
	}
	return c
}

// Validate returns an error if the configuration is unusable.
func (c CrawlConfig) Validate() error {
	if c.Seed == "" {
		return Errorf(EINVALID, "seed URL required")
	}
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive, got %d", c.MaxPages)
	}
	if c.Delay != nil && *c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	return nil
}
