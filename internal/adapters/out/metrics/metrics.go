// Package metrics exposes the Prometheus instruments of the service. A nil *Metrics
// is valid and records nothing, so collaborators can be built without it in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "entregas"

// Outcome labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	registry *prometheus.Registry

	tokenRefreshes *prometheus.CounterVec
	pulls          *prometheus.CounterVec
	pulledOrders   prometheus.Counter
	pushes         *prometheus.CounterVec
	cycleDuration  prometheus.Histogram
	awaitingSync   prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers every instrument on a private registry together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tokenRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Access token requests sent to the invoicing system.",
		}, []string{"result"}),
		pulls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_pulls_total",
			Help:      "Pending invoice pulls.",
		}, []string{"result"}),
		pulledOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_orders_created_total",
			Help:      "Orders created from pulled invoices.",
		}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_pushes_total",
			Help:      "Delivery confirmations pushed to the invoicing system.",
		}, []string{"result"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_cycle_duration_seconds",
			Help:      "Duration of a full synchronization cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		awaitingSync: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_awaiting_sync",
			Help:      "Delivered orders not yet acknowledged upstream, as of the last cycle.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.tokenRefreshes,
		m.pulls,
		m.pulledOrders,
		m.pushes,
		m.cycleDuration,
		m.awaitingSync,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) TokenRefreshed(err error) {
	if m == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) Pulled(created int, err error) {
	if m == nil {
		return
	}
	m.pulls.WithLabelValues(result(err)).Inc()
	m.pulledOrders.Add(float64(created))
}

func (m *Metrics) Pushed(err error) {
	if m == nil {
		return
	}
	m.pushes.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) CycleFinished(d time.Duration) {
	if m == nil {
		return
	}
	m.cycleDuration.Observe(d.Seconds())
}

func (m *Metrics) AwaitingSync(n int) {
	if m == nil {
		return
	}
	m.awaitingSync.Set(float64(n))
}

func (m *Metrics) HTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
