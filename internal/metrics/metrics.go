package metrics

import (
	"bid-tracker/internal/biddingerrors"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Bid outcome labels
const (
	ResultAccepted        = "accepted"
	ResultMissingArgument = "missing_argument"
	ResultInvalidArgument = "invalid_argument"
	ResultItemNotFound    = "item_not_found"
	ResultTooLow          = "too_low"
	ResultError           = "error"
)

// Metrics holds the service's collectors on a private registry so that
// several routers can coexist in one process (tests, benchmarks).
type Metrics struct {
	registry        *prometheus.Registry
	bids            *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bids: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bidtracker",
			Name:      "bids_total",
			Help:      "Bids submitted, by outcome.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bidtracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.bids,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveBid counts one AddBid outcome
func (m *Metrics) ObserveBid(err error) {
	m.bids.WithLabelValues(BidResult(err)).Inc()
}

// ObserveRequest records the latency of one HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// BidResult maps an AddBid error to its outcome label
func BidResult(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.Is(err, biddingerrors.ErrMissingArgument):
		return ResultMissingArgument
	case errors.Is(err, biddingerrors.ErrInvalidArgument):
		return ResultInvalidArgument
	case errors.Is(err, biddingerrors.ErrItemNotFound):
		return ResultItemNotFound
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return ResultTooLow
	default:
		return ResultError
	}
}
