// Package robotstxt implements the robots.txt compliance gate using
// temoto/robotstxt.
package robotstxt

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/webmd"
	"github.com/temoto/robotstxt"
)

// Compile-time interface verification.
var (
	_ webmd.PolicyLoader = (*Loader)(nil)
	_ webmd.Policy       = (*Policy)(nil)
)

// DefaultLoadTimeout bounds the robots.txt fetch.
const DefaultLoadTimeout = 10 * time.Second

// Loader fetches and parses a site's robots.txt.
// Load errors are returned to the caller; degrading to an allow-all
// policy on failure is a policy decision that belongs to the caller
// (see the slog package's PolicyLoader decorator).
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with the given HTTP client.
// If client is nil, a client with DefaultLoadTimeout is used.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: DefaultLoadTimeout}
	}
	return &Loader{client: client}
}

// Load retrieves and parses <origin>/robots.txt.
func (l *Loader) Load(ctx context.Context, origin string) (webmd.Policy, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, webmd.Errorf(webmd.EINVALID, "invalid origin %q: %v", origin, err)
	}

	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return nil, webmd.Errorf(webmd.EINVALID, "building robots request: %v", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, webmd.Errorf(webmd.EUNAVAILABLE, "fetching %s: %v", robotsURL, err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, webmd.Errorf(webmd.EUNAVAILABLE, "parsing %s: %v", robotsURL, err)
	}

	return &Policy{data: data}, nil
}

// Policy evaluates robots.txt rules for the wildcard user-agent.
type Policy struct {
	data *robotstxt.RobotsData
}

// Allowed reports whether the URL's path may be fetched under the "*"
// agent group. Unparseable URLs are disallowed.
func (p *Policy) Allowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	group := p.data.FindGroup("*")
	if group == nil {
		return true
	}
	return group.Test(u.Path)
}
