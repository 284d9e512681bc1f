package mock

import (
	"context"

	"github.com/fwojciec/webmd"
)

var (
	_ webmd.PolicyLoader = (*PolicyLoader)(nil)
	_ webmd.Policy       = (*Policy)(nil)
)

// PolicyLoader is a mock implementation of webmd.PolicyLoader.
type PolicyLoader struct {
	LoadFn func(ctx context.Context, origin string) (webmd.Policy, error)
}

func (l *PolicyLoader) Load(ctx context.Context, origin string) (webmd.Policy, error) {
	return l.LoadFn(ctx, origin)
}

// Policy is a mock implementation of webmd.Policy.
type Policy struct {
	AllowedFn func(rawURL string) bool
}

func (p *Policy) Allowed(rawURL string) bool {
	return p.AllowedFn(rawURL)
}
