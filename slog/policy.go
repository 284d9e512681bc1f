package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/webmd"
)

// Ensure PolicyLoader implements webmd.PolicyLoader.
var _ webmd.PolicyLoader = (*PolicyLoader)(nil)

// PolicyLoader wraps a PolicyLoader with best-effort semantics: a failed
// robots.txt load is logged as a warning and degrades to an allow-all
// policy, so policy loading never fails a crawl.
type PolicyLoader struct {
	next   webmd.PolicyLoader
	logger *slog.Logger
}

// NewPolicyLoader creates a new PolicyLoader.
func NewPolicyLoader(next webmd.PolicyLoader, logger *slog.Logger) *PolicyLoader {
	return &PolicyLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader, degrading to webmd.AllowAll on
// any error.
func (l *PolicyLoader) Load(ctx context.Context, origin string) (webmd.Policy, error) {
	policy, err := l.next.Load(ctx, origin)
	if err != nil {
		l.logger.Warn("failed to load robots.txt, continuing without restrictions",
			"origin", origin,
			"error", err,
		)
		return webmd.AllowAll(), nil
	}
	l.logger.Info("loaded robots.txt", "origin", origin)
	return policy, nil
}
