package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	reg *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	remoteRequests *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
	wizardsOpen    prometheus.Gauge
	wizardEvents   *prometheus.CounterVec
	checks         *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	panics         prometheus.Counter
}

var buckets = []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.6, 1, 3, 6, 10}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bff_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bff_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: buckets,
		}, []string{"method", "route"}),
		remoteRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_requests_total",
			Help: "Calls to the marketplace API, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		remoteDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_request_duration_seconds",
			Help:    "Marketplace API latency including retries.",
			Buckets: buckets,
		}, []string{"operation"}),
		wizardsOpen: f.NewGauge(prometheus.GaugeOpts{
			Name: "booking_wizards_open",
			Help: "Wizard sessions currently held in memory.",
		}),
		wizardEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_wizard_events_total",
			Help: "Wizard lifecycle events.",
		}, []string{"event"}),
		checks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_availability_checks_total",
			Help: "Availability checks by result.",
		}, []string{"result"}),
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Booking submissions by outcome.",
		}, []string{"outcome"}),
		panics: f.NewCounter(prometheus.CounterOpts{
			Name: "bff_http_panics_recovered_total",
			Help: "Requests recovered from an internal panic.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveRemote(operation, outcome string, d time.Duration) {
	m.remoteRequests.WithLabelValues(operation, outcome).Inc()
	m.remoteDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) SetWizardsOpen(n int) {
	m.wizardsOpen.Set(float64(n))
}

// WizardEvent counts opened, closed, expired and auth_discarded wizards.
func (m *Metrics) WizardEvent(event string) {
	m.wizardEvents.WithLabelValues(event).Inc()
}

func (m *Metrics) AvailabilityCheck(result string) {
	m.checks.WithLabelValues(result).Inc()
}

func (m *Metrics) Submission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PanicRecovered() {
	m.panics.Inc()
}
