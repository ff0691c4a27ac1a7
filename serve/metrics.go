package serve

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xy-planning-network/waymark/dispatch"
)

// MetricsConfig configures the navigation metrics of a Server.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "waymark").
	Namespace string

	// Buckets are the histogram buckets for resolution duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry registers and gathers the metrics.
	// Default: prometheus.DefaultRegisterer and prometheus.DefaultGatherer
	Registry *prometheus.Registry
}

// Metrics counts the navigations a Server resolves.
type Metrics struct {
	gatherer    prometheus.Gatherer
	navigations *prometheus.CounterVec
	redirects   prometheus.Counter
	duration    prometheus.Histogram
}

// NewMetrics registers navigation metrics as config sets out.
// Registering twice with the same registry panics.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "waymark"
	}

	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}

	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if config.Registry != nil {
		reg, gatherer = config.Registry, config.Registry
	}

	factory := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "navigations_total",
			Help:      "Total number of navigations resolved, by whether a route matched and the kind of action dispatched",
		}, []string{"result", "kind"}),
		redirects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "redirects_total",
			Help:      "Total number of navigations requested by a dispatched action",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "resolve_duration_seconds",
			Help:      "Duration of resolving a request into an action in seconds",
			Buckets:   config.Buckets,
		}),
	}
}

// Navigated counts a navigation which dispatched an Action of kind.
func (m *Metrics) Navigated(matched bool, kind dispatch.Kind) {
	if m == nil {
		return
	}

	result := "unmatched"
	if matched {
		result = "matched"
	}

	m.navigations.WithLabelValues(result, string(kind)).Inc()
}

// Redirected counts a navigation requested by a dispatched Action.
func (m *Metrics) Redirected() {
	if m == nil {
		return
	}

	m.redirects.Inc()
}

// Observe records how long resolving a request took since start.
func (m *Metrics) Observe(start time.Time) {
	if m == nil {
		return
	}

	m.duration.Observe(time.Since(start).Seconds())
}

// Handler exposes the gathered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
