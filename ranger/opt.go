package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/serve"
	"golang.org/x/time/rate"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithEnv is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithServer is an example of the second.
// An unexported field on the passed in *Ranger
// is updated only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the waymark host.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", waymark.ErrMissingData)
		}

		rng.ctx = ctx
		rng.debug(fmt.Sprintf("using context %T", ctx))
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := waymark.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = waymark.EnvVarOrEnv(environmentEnvVar, waymark.Development)
		}

		rng.env = e
		rng.debug(fmt.Sprintf("using env %s", e))
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the waymark host.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", waymark.ErrMissingData)
		}

		rng.l = l
		rng.debug(fmt.Sprintf("using logger %T", l))
		return nil, nil
	}
}

// WithMetrics counts navigations with m.
// A nil m turns metrics off.
func WithMetrics(m *serve.Metrics) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.metrics = m
		rng.debug(fmt.Sprintf("using metrics %T", m))
		return nil, nil
	}
}

// WithMiddleware appends adapters to the default stack every page request passes through.
func WithMiddleware(adapters ...serve.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.stack = append(rng.stack, adapters...)
		rng.debug(fmt.Sprintf("using %d additional middlewares", len(adapters)))
		return nil, nil
	}
}

// WithNavigationLimit limits the navigations resolving a single request may take.
// Confer serve.WithNavigationLimit.
func WithNavigationLimit(limit rate.Limit, burst int) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if burst < 1 {
			return nil, fmt.Errorf("%w: navigation burst %d", waymark.ErrNotValid, burst)
		}

		rng.navLimit, rng.navBurst = limit, burst
		rng.debug(fmt.Sprintf("using navigation limit %v burst %d", limit, burst))
		return nil, nil
	}
}

// WithServer constructs a followup option that, when called,
// serves the waymark host with srv.
func WithServer(srv *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if srv == nil {
			return nil, fmt.Errorf("%w: nil server", waymark.ErrMissingData)
		}

		return func() error {
			rng.srv = srv
			rng.debug(fmt.Sprintf("using server %T at %s", srv, srv.Addr))
			return nil
		}, nil
	}
}

// WithVisitors rate limits requests per visitor with vs.
// A nil vs turns rate limiting off.
func WithVisitors(vs *serve.Visitors) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.visitors = vs
		rng.debug(fmt.Sprintf("using visitors %T", vs))
		return nil, nil
	}
}
