// Package metrics exposes Prometheus collectors for market activity and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	model "meme-market/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "meme_market"

// Metrics holds a private registry so several instances can coexist in tests
type Metrics struct {
	Registry *prometheus.Registry

	votes     *prometheus.CounterVec
	bids      *prometheus.CounterVec
	submitted prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		votes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_total",
				Help:      "Total number of votes applied.",
			},
			[]string{"kind"},
		),
		bids: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bids_total",
				Help:      "Total number of bids by outcome.",
			},
			[]string{"outcome"},
		),
		submitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "memes_submitted_total",
				Help:      "Total number of memes submitted.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
	}

	m.Registry.MustRegister(
		m.votes,
		m.bids,
		m.submitted,
		m.httpRequests,
		m.httpDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) VoteRecorded(kind model.VoteKind) {
	m.votes.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) BidRecorded(outcome string) {
	m.bids.WithLabelValues(outcome).Inc()
}

func (m *Metrics) MemeSubmitted() {
	m.submitted.Inc()
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
