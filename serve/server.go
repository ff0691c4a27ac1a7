package serve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rohanthewiz/element"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/history"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/router"
	"golang.org/x/time/rate"
)

const (
	healthPath  = "/healthz"
	metricsPath = "/metrics"
	routesPath  = "/_routes"
)

// An App is the routed application a Server hosts.
type App struct {
	Title string

	// Routes declares the application's routes, dispatching through d.
	// Routes is called once per request.
	Routes func(d dispatch.Dispatcher) ([]route.Route, error)

	// Pages renders the Action a request resolves to.
	Pages Pages
}

// A Redirector is an Action which, once dispatched, navigates to another location.
type Redirector interface {
	dispatch.Action
	RedirectTo() waymark.URL
}

// A Resolution is what a request's location resolved to.
type Resolution struct {
	// Action is the last Action dispatched.
	Action dispatch.Action

	// Redirected is set if a Redirector navigated away from the requested location.
	Redirected bool

	// URL is the location arrived at.
	URL waymark.URL
}

// Found asserts whether a route matched the location arrived at.
func (res Resolution) Found() bool {
	_, invalid := res.Action.(router.InvalidRoute)
	return res.Action != nil && !invalid
}

// A Server hosts an App.
type Server struct {
	app      App
	env      waymark.Environment
	l        logger.Logger
	metrics  *Metrics
	navBurst int
	navLimit rate.Limit
	r        *mux.Router
	stack    []Adapter
}

// New constructs a *Server hosting app.
func New(app App, opts ...ServerOptFn) (*Server, error) {
	if app.Routes == nil {
		return nil, fmt.Errorf("%w: app has no routes", waymark.ErrMissingData)
	}

	s := &Server{
		app:      app,
		env:      waymark.Development,
		l:        logger.NewDiscardLogger(),
		navBurst: 8,
		navLimit: rate.Every(time.Second),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.r = mux.NewRouter()
	s.r.HandleFunc(healthPath, handleHealth).Methods(http.MethodGet, http.MethodHead)
	if s.metrics != nil {
		s.r.Handle(metricsPath, s.metrics.Handler()).Methods(http.MethodGet)
	}

	if s.env.ExposesRouteTable() {
		s.r.HandleFunc(routesPath, s.handleRoutes).Methods(http.MethodGet)
	}

	s.r.PathPrefix("/").
		Handler(Chain(ReportPanic(s.env)(s.handlePage), s.stack...)).
		Methods(http.MethodGet, http.MethodHead, http.MethodOptions)

	return s, nil
}

// ServeHTTP responds to an HTTP request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Routes renders the patterns of every route app declares, in the order they are matched.
func (s *Server) Routes() ([]string, error) {
	routes, err := s.app.Routes(dispatch.NewRecorder())
	if err != nil {
		return nil, fmt.Errorf("declaring routes: %w", err)
	}

	patterns := make([]string, len(routes))
	for i, r := range routes {
		patterns[i] = r.String()
	}

	return patterns, nil
}

// Resolve navigates to u through the app's routes and reports the Action dispatched.
// Navigations are logged under the navigation ID and requested URL ctx carries,
// u being the requested URL if ctx carries none.
//
// Every Redirector dispatched is followed, up to the navigation limit of s;
// a redirect beyond that limit fails with ErrRedirects.
func (s *Server) Resolve(ctx context.Context, u waymark.URL) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	start := time.Now()
	defer s.metrics.Observe(start)

	rec := dispatch.NewRecorder()
	routes, err := s.app.Routes(rec)
	if err != nil {
		return Resolution{}, fmt.Errorf("declaring routes: %w", err)
	}

	if len(routes) == 0 {
		return Resolution{}, ErrNoRoutes
	}

	if _, ok := waymark.URLFromContext(ctx); !ok {
		ctx = waymark.NewURLContext(ctx, u)
	}

	h := history.NewMemory(
		u,
		history.WithContext(ctx),
		history.WithDeferred(),
		history.WithLogger(s.l),
		history.WithRateLimit(rate.NewLimiter(s.navLimit, s.navBurst)),
	)

	var redirected bool
	rec.Register(func(a dispatch.Action) {
		if rd, ok := a.(Redirector); ok {
			redirected = true
			s.metrics.Redirected()
			h.NavigateTo(rd.RedirectTo())
		}
	})

	router.StartListeningWithDispatcher(h, routes, rec,
		router.WithLogger(s.l),
		router.WithObserver(func(_ waymark.URL, matched bool) {
			var kind dispatch.Kind
			if a, ok := rec.Last(); ok {
				kind = a.Kind()
			}

			s.metrics.Navigated(matched, kind)
		}),
	)

	h.RaiseNavigateToForCurrentLocation()
	h.Drain()

	last, _ := rec.Last()
	if _, ok := last.(Redirector); ok {
		return Resolution{}, fmt.Errorf("%w: resolving %s", ErrRedirects, u)
	}

	return Resolution{Action: last, Redirected: redirected, URL: h.CurrentLocation()}, nil
}

// Page returns the page rendering res.
func (s *Server) Page(res Resolution) element.Component {
	if gen, ok := s.app.Pages.Match(res.Action); ok {
		return gen()
	}

	if !res.Found() {
		return NotFoundPage{URL: res.URL}
	}

	return DefaultPage{Action: res.Action, URL: res.URL}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	u, err := history.LocationFromRequest(r)
	if err != nil {
		s.l.Warn("unreadable location", &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := s.Resolve(waymark.NewURLContext(r.Context(), u), u)
	if err != nil {
		s.l.Error("failed resolving location", &logger.LogContext{
			Error:      err,
			Navigation: u.String(),
			Request:    r,
		})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.Redirected {
		http.Redirect(w, r, res.URL.String(), http.StatusFound)
		return
	}

	status := http.StatusOK
	if !res.Found() {
		status = http.StatusNotFound
	}

	b := element.NewBuilder()
	element.RenderComponents(b, Layout{Title: s.app.Title, Body: s.Page(res)})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, b.String())
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	patterns, err := s.Routes()
	if err != nil {
		s.l.Error("failed listing routes", &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, strings.Join(patterns, "\n")+"\n")
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
