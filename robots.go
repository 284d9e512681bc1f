package webmd

import "context"

// Policy decides whether a URL may be fetched under a site's crawl policy.
type Policy interface {
	// Allowed evaluates the URL against the policy for user-agent "*".
	Allowed(rawURL string) bool
}

// PolicyLoader fetches and parses a site's robots.txt.
// Load is called once per crawl, before the first dequeue.
type PolicyLoader interface {
	// Load retrieves the policy for an origin (scheme://host).
	Load(ctx context.Context, origin string) (Policy, error)
}

// allowAll permits every URL.
type allowAll struct{}

func (allowAll) Allowed(string) bool { return true }

// AllowAll returns a permissive policy that permits every URL. It is the
// degraded policy used when robots.txt cannot be fetched or parsed.
func AllowAll() Policy { return allowAll{} }
