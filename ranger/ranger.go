package ranger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO: load the env files named in ENV_FILES instead of only .env
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/serve"
	"golang.org/x/time/rate"
)

// A Ranger manages and exposes all components of a waymark host to one another.
type Ranger struct {
	*serve.Server

	cancel   context.CancelFunc
	ctx      context.Context
	env      waymark.Environment
	l        logger.Logger
	metrics  *serve.Metrics
	navBurst int
	navLimit rate.Limit
	srv      *http.Server
	stack    []serve.Adapter
	visitors *serve.Visitors
}

// New constructs a Ranger hosting app from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(app serve.App, opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	srv, err := serve.New(
		app,
		serve.WithEnv(r.env),
		serve.WithLogger(r.l),
		serve.WithMetrics(r.metrics),
		serve.WithMiddleware(append(r.defaultMiddleware(), r.stack...)...),
		serve.WithNavigationLimit(r.navLimit, r.navBurst),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	r.Server = srv
	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}
	r.srv.Handler = r.Server

	return r, nil
}

// Addr is the address the web server listens on.
func (r *Ranger) Addr() string { return r.srv.Addr }

// Cancel returns the context.CancelFunc stopping Guide.
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

// Env is the environment the waymark host runs in.
func (r *Ranger) Env() waymark.Environment { return r.env }

// EmitLogger returns the logger.Logger the waymark host logs with.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errs <- err
		}
	}()

	select {
	case <-r.ctx.Done():
		return r.Shutdown()
	case err := <-errs:
		r.cancel()
		return err
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

// debug logs msg while configuring a *Ranger, once a logger.Logger is set.
func (r *Ranger) debug(msg string) {
	if r.l != nil {
		r.l.Debug(msg, nil)
	}
}
