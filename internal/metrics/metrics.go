// Package metrics exposes Prometheus metrics for the gate, sessions, and
// order form.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/lamassu-studio/website/internal/keygate"
)

var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		New,
	),
)

// NewRegistry creates the registry served on /metrics, with Go runtime and
// process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics holds the site's collectors
type Metrics struct {
	reg *prometheus.Registry

	GateChecks     *prometheus.CounterVec
	GateCheckTime  prometheus.Histogram
	KeySelections  *prometheus.CounterVec
	SessionsActive prometheus.Gauge
	Orders         *prometheus.CounterVec
}

var _ keygate.Observer = (*Metrics)(nil)

// New registers the site's collectors on reg
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		GateChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lamassu_gate_checks_total",
			Help: "Initial API key checks by outcome",
		}, []string{"outcome"}),
		GateCheckTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lamassu_gate_check_duration_seconds",
			Help:    "Time from gate mount to leaving the checking state",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		KeySelections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lamassu_key_selections_total",
			Help: "User-initiated key selections by host availability",
		}, []string{"available"}),
		SessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "lamassu_sessions_active",
			Help: "Browser sessions currently tracked",
		}),
		Orders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lamassu_orders_total",
			Help: "Order form submissions by result",
		}, []string{"result"}),
	}
}

// CheckCompleted records how a gate's initial check settled
func (m *Metrics) CheckCompleted(outcome keygate.Outcome, elapsed time.Duration) {
	m.GateChecks.WithLabelValues(string(outcome)).Inc()
	m.GateCheckTime.Observe(elapsed.Seconds())
}

// SelectionRequested records a key selection attempt
func (m *Metrics) SelectionRequested(available bool) {
	m.KeySelections.WithLabelValues(strconv.FormatBool(available)).Inc()
}

// OrderSubmitted records an order form submission; result is accepted,
// invalid, or rate_limited.
func (m *Metrics) OrderSubmitted(result string) {
	m.Orders.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
