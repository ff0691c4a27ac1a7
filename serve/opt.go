package serve

import (
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"golang.org/x/time/rate"
)

// A ServerOptFn mutates the provided *Server in some way.
// A ServerOptFn is used when constructing a new Server.
type ServerOptFn func(*Server)

// WithEnv sets the environment the Server runs in.
// In development, panics are not reported, and outside of production the route table is served.
func WithEnv(env waymark.Environment) ServerOptFn {
	return func(s *Server) {
		if env.Valid() == nil {
			s.env = env
		}
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
func WithLogger(l logger.Logger) ServerOptFn {
	return func(s *Server) {
		if l != nil {
			s.l = l
		}
	}
}

// WithMetrics counts navigations with m and serves them under /metrics.
func WithMetrics(m *Metrics) ServerOptFn {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithMiddleware appends adapters to those every page request passes through, in order.
func WithMiddleware(adapters ...Adapter) ServerOptFn {
	return func(s *Server) {
		s.stack = append(s.stack, adapters...)
	}
}

// WithNavigationLimit limits the navigations resolving a single request may take,
// following redirects, to limit a second with bursts of up to burst.
func WithNavigationLimit(limit rate.Limit, burst int) ServerOptFn {
	return func(s *Server) {
		s.navLimit = limit
		s.navBurst = burst
	}
}
