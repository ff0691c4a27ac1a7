package ranger

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/logger"
	"github.com/xy-planning-network/waymark/serve"
	"golang.org/x/time/rate"
)

const (
	// Routing defaults
	basePathEnvVar        = "BASE_PATH"
	navigationBurstEnvVar = "NAVIGATION_BURST"
	DefaultNavBurst       = 8
	navigationRateEnvVar  = "NAVIGATION_RATE"
	DefaultNavRate        = 1.0

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Web server defaults
	corsOriginEnvVar          = "CORS_ORIGIN"
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Visitor defaults
	defaultVisitorBurst = 20
	defaultVisitorRate  = 5
)

// BasePath reads the segments every route of the application is declared under from BASE_PATH.
func BasePath() []waymark.Segment {
	return waymark.EnvVarOrSegments(basePathEnvVar, nil)
}

// defaultOpts are the RangerOptions New applies before any passed to it.
func defaultOpts() []RangerOption {
	env := waymark.EnvVarOrEnv(environmentEnvVar, waymark.Development)
	return []RangerOption{
		WithEnv(env.String()),
		WithLogger(defaultLogger(env)),
		WithMetrics(serve.NewMetrics(serve.MetricsConfig{Registry: prometheus.NewRegistry()})),
		WithNavigationLimit(
			rate.Limit(waymark.EnvVarOrFloat(navigationRateEnvVar, DefaultNavRate)),
			waymark.EnvVarOrInt(navigationBurstEnvVar, DefaultNavBurst),
		),
		WithVisitors(serve.NewVisitors(defaultVisitorRate, defaultVisitorBurst)),
	}
}

// defaultLogger constructs a logger.Logger configured for env,
// reporting to Sentry if SENTRY_DSN is set.
func defaultLogger(env waymark.Environment) logger.Logger {
	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(waymark.EnvVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
	)
}

// defaultServer constructs an *http.Server configured by the HOST, PORT and SERVER_*_TIMEOUT env vars.
func defaultServer(ctx context.Context) *http.Server {
	port := waymark.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         waymark.EnvVarOrString(hostEnvVar, DefaultHost) + port,
		IdleTimeout:  waymark.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  waymark.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: waymark.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultMiddleware is the stack every page request passes through before any added WithMiddleware.
func (r *Ranger) defaultMiddleware() []serve.Adapter {
	return []serve.Adapter{
		serve.RequestID(),
		serve.InjectIPAddress(),
		serve.LogRequest(r.l),
		serve.RateLimit(r.visitors),
		serve.CORS(waymark.EnvVarOrString(corsOriginEnvVar, "")),
	}
}
