package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects request counts, latency and payload sizes per output format.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	payload  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which tests use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "docframe",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total conversion requests sent to the engine.",
			},
			[]string{"format", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "docframe",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Conversion request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"format"},
		),
		payload: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "docframe",
				Subsystem: "client",
				Name:      "payload_bytes",
				Help:      "Size of the encoded document tree sent to the engine.",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"format"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration, m.payload)
	}
	return m
}

// ObserveRequest records one finished request. Status 0 means the request
// never got a response.
func (m *Metrics) ObserveRequest(format string, status int, payloadBytes int, d time.Duration) {
	if m == nil {
		return
	}
	statusLabel := "error"
	if status != 0 {
		statusLabel = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(format, statusLabel).Inc()
	m.duration.WithLabelValues(format).Observe(d.Seconds())
	m.payload.WithLabelValues(format).Observe(float64(payloadBytes))
}

// Requests returns the counter, for tests and custom exporters.
func (m *Metrics) Requests() *prometheus.CounterVec { return m.requests }
