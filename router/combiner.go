package router

import (
	"fmt"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/history"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/route"
)

// An Observer is told of every navigation a listener resolves and whether a route matched it.
type Observer func(u waymark.URL, matched bool)

type listener struct {
	l         logger.Logger
	notFound  func(waymark.URL)
	observers []Observer
	routes    []route.Route
}

// A ListenOption configures how StartListening resolves navigations.
type ListenOption func(*listener)

// WithLogger logs each resolved navigation at the debug level.
func WithLogger(l logger.Logger) ListenOption {
	return func(ln *listener) {
		if l != nil {
			ln.l = l
		}
	}
}

// WithObserver adds obs to those told of each resolved navigation, after its callback has run.
func WithObserver(obs Observer) ListenOption {
	return func(ln *listener) {
		if obs != nil {
			ln.observers = append(ln.observers, obs)
		}
	}
}

// StartListening registers with h to match every navigation against routes.
//
// routes are tried in order, and only the first to match has its callback called.
// If none match, notFound is called with the URL; a nil notFound ignores the navigation.
// A panicking callback is not recovered.
//
// StartListening copies routes; routes added to the slice afterwards are not seen.
// StartListening panics with an error wrapping [waymark.ErrMissingData] if h is nil.
func StartListening(h history.History, routes []route.Route, notFound func(waymark.URL), opts ...ListenOption) {
	if h == nil {
		panic(fmt.Errorf("router: %w: nil history", waymark.ErrMissingData))
	}

	ln := &listener{
		l:        logger.NewDiscardLogger(),
		notFound: notFound,
		routes:   append([]route.Route(nil), routes...),
	}

	for _, opt := range opts {
		opt(ln)
	}

	h.RegisterForNavigatedCallback(ln.navigated)
}

// StartListeningWithDispatcher is like StartListening,
// dispatching an InvalidRoute carrying the URL through d when no route matches.
//
// StartListeningWithDispatcher panics with an error wrapping [waymark.ErrMissingData] if d is nil.
func StartListeningWithDispatcher(h history.History, routes []route.Route, d dispatch.Dispatcher, opts ...ListenOption) {
	if d == nil {
		panic(fmt.Errorf("router: %w: nil dispatcher", waymark.ErrMissingData))
	}

	StartListening(h, routes, func(u waymark.URL) { d.Dispatch(InvalidRoute{URL: u}) }, opts...)
}

// Match calls the callback of the first of routes matching u and reports whether one did.
func Match(u waymark.URL, routes []route.Route) bool {
	_, ok := match(u, routes)
	return ok
}

func match(u waymark.URL, routes []route.Route) (route.Route, bool) {
	for _, r := range routes {
		if r.ExecuteCallbackIfURLMatches(u) {
			return r, true
		}
	}

	return nil, false
}

func (ln *listener) navigated(u waymark.URL) {
	r, ok := match(u, ln.routes)
	if ok {
		ln.l.Debug("matched route", &logger.LogContext{
			Data:       map[string]any{"route": r.String()},
			Navigation: u.String(),
		})
	} else {
		ln.l.Debug("no route matched", &logger.LogContext{Navigation: u.String()})
		if ln.notFound != nil {
			ln.notFound(u)
		}
	}

	for _, obs := range ln.observers {
		obs(u, ok)
	}
}
