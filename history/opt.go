package history

import (
	"context"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"golang.org/x/time/rate"
)

// A MemoryOption configures a *Memory when constructing a new one.
type MemoryOption func(*Memory)

// WithContext ties every navigation the *Memory logs to the navigation ID
// and requested URL stashed in ctx.
// Without a navigation ID in ctx, a *Memory logs under a uuid of its own.
func WithContext(ctx context.Context) MemoryOption {
	return func(m *Memory) {
		if ctx == nil {
			return
		}

		m.navID = waymark.NavigationIDFromContext(ctx)
		if u, ok := waymark.URLFromContext(ctx); ok {
			m.requested = u.String()
		}
	}
}

// WithDeferred queues navigations requested through NavigateTo
// until Run or Drain delivers them.
func WithDeferred() MemoryOption {
	return func(m *Memory) {
		m.deferred = true
	}
}

// WithLogger sets the logger.Logger the *Memory logs navigations with.
func WithLogger(l logger.Logger) MemoryOption {
	return func(m *Memory) {
		if l != nil {
			m.l = l
		}
	}
}

// WithRateLimit drops navigations requested through NavigateTo faster than limiter allows,
// e.g., to break a route whose action navigates back to the same route.
func WithRateLimit(limiter *rate.Limiter) MemoryOption {
	return func(m *Memory) {
		m.limiter = limiter
	}
}
