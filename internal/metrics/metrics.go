package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agent_connect"

// Результаты выдачи подключения (label "result")
const (
	ResultIssued      = "issued"
	ResultBadRequest  = "bad_request"
	ResultConfigError = "config_error"
	ResultSignError   = "signing_error"
)

type Metrics struct {
	registry *prometheus.Registry

	ConnectionsIssued *prometheus.CounterVec
	MetadataRepaired  prometheus.Counter
	SigningDuration   prometheus.Histogram
	RateLimited       prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New создает коллекторы на собственном реестре, чтобы тесты не
// конфликтовали с глобальным prometheus.DefaultRegisterer
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ConnectionsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "issuer",
			Name:      "connections_total",
			Help:      "Connection detail requests by result.",
		}, []string{"result"}),
		MetadataRepaired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "issuer",
			Name:      "metadata_repaired_total",
			Help:      "Requests whose participant metadata was replaced with the default object.",
		}),
		SigningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "issuer",
			Name:      "signing_duration_seconds",
			Help:      "Time spent signing access tokens.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
	}

	m.registry.MustRegister(
		m.ConnectionsIssued,
		m.MetadataRepaired,
		m.SigningDuration,
		m.RateLimited,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveConnection(result string) {
	m.ConnectionsIssued.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSigning(started time.Time) {
	m.SigningDuration.Observe(time.Since(started).Seconds())
}
