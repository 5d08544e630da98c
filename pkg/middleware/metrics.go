package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/TheNexusGroup/simplistic/pkg/server"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "simplistic").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "simplistic",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	eventsTotal   *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
	eventErrors   *prometheus.CounterVec
}

// Registering the same metric names twice on the default registerer
// panics, so the default-registry instance is a singleton.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of demo events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"demo", "type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"demo"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_errors_total",
			Help:        "Total number of event processing errors",
			ConstLabels: config.ConstLabels,
		}, []string{"demo", "error_type"}),
	}
}

// Prometheus creates middleware that records a counter, a duration
// histogram, and an error counter for every dispatched event.
//
// Metrics collected:
//   - simplistic_events_total: Counter of events by demo, type, and status
//   - simplistic_event_duration_seconds: Histogram of event processing duration
//   - simplistic_event_errors_total: Counter of event errors by demo and category
//
// Example:
//
//	srv := server.New(nil, nil)
//	srv.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
func Prometheus(opts ...MetricsOption) server.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	var m *metrics
	if config.Registry == prometheus.DefaultRegisterer {
		globalMetricsMu.Lock()
		if globalMetrics == nil {
			globalMetrics = initMetrics(config)
		}
		m = globalMetrics
		globalMetricsMu.Unlock()
	} else {
		m = initMetrics(config)
	}

	return func(next server.EventHandler) server.EventHandler {
		return func(s *server.Session, ev server.Event) error {
			demo := s.DemoName()
			start := time.Now()

			err := next(s, ev)

			m.eventDuration.WithLabelValues(demo).Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
				m.eventErrors.WithLabelValues(demo, categorizeError(err)).Inc()
			}
			m.eventsTotal.WithLabelValues(demo, ev.Type, status).Inc()

			return err
		}
	}
}

// categorizeError maps errors to a small label set so error messages do
// not become high-cardinality labels.
func categorizeError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no handler"):
		return "no_handler"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "websocket"):
		return "websocket"
	default:
		return "internal"
	}
}
