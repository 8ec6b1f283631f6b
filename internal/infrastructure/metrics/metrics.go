package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

const namespace = "stuff3d"

// Metrics groups the checkout collectors. It implements
// interfaces.IPaymentObserver and provides hooks for the checkout sessions.
type Metrics struct {
	PaymentsCreated    *prometheus.CounterVec
	GatewayErrors      *prometheus.CounterVec
	StatusPolls        *prometheus.CounterVec
	CheckoutTransition *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
	HTTPDuration       *prometheus.HistogramVec
}

var _ interfaces.IPaymentObserver = (*Metrics)(nil)

// New registers the collectors on reg (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		PaymentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_created_total",
			Help:      "Payments accepted by the provider, by method and initial status.",
		}, []string{"method", "status"}),
		GatewayErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_gateway_errors_total",
			Help:      "Payment provider failures, by operation and reason.",
		}, []string{"op", "reason"}),
		StatusPolls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_status_polls_total",
			Help:      "Status poller ticks, by outcome.",
		}, []string{"outcome"}),
		CheckoutTransition: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_transitions_total",
			Help:      "Checkout state machine transitions, by target state.",
		}, []string{"state"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checkout_active_sessions",
			Help:      "Open checkout sessions.",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) PaymentCreated(method entities.PaymentMethod, status entities.PaymentStatus) {
	m.PaymentsCreated.WithLabelValues(string(method), string(status)).Inc()
}

func (m *Metrics) GatewayFailed(op string, reason string) {
	m.GatewayErrors.WithLabelValues(op, reason).Inc()
}

// ObservePoll matches the status poller's observer hook.
func (m *Metrics) ObservePoll(outcome string) {
	m.StatusPolls.WithLabelValues(outcome).Inc()
}

// ObserveTransition takes state names so this package stays independent of
// the checkout package.
func (m *Metrics) ObserveTransition(to string) {
	m.CheckoutTransition.WithLabelValues(to).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}

// GinMiddleware records request latency by route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
