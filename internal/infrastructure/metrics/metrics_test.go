package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"stuff3d_checkout/internal/domain/entities"
)

func TestMetrics_Observer(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PaymentCreated(entities.PaymentMethodPix, entities.PaymentStatusPending)
	m.PaymentCreated(entities.PaymentMethodPix, entities.PaymentStatusPending)
	m.GatewayFailed("create", "unauthorized")
	m.ObservePoll("ok")
	m.ObserveTransition("approved")
	m.SetActiveSessions(3)

	if got := testutil.ToFloat64(m.PaymentsCreated.WithLabelValues("pix", "pending")); got != 2 {
		t.Fatalf("expected 2 payments, got %v", got)
	}
	if got := testutil.ToFloat64(m.GatewayErrors.WithLabelValues("create", "unauthorized")); got != 1 {
		t.Fatalf("expected 1 gateway error, got %v", got)
	}
	if got := testutil.ToFloat64(m.StatusPolls.WithLabelValues("ok")); got != 1 {
		t.Fatalf("expected 1 poll, got %v", got)
	}
	if got := testutil.ToFloat64(m.CheckoutTransition.WithLabelValues("approved")); got != 1 {
		t.Fatalf("expected 1 transition, got %v", got)
	}
	if got := testutil.ToFloat64(m.ActiveSessions); got != 3 {
		t.Fatalf("expected 3 sessions, got %v", got)
	}
}

func TestMetrics_GinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/products/:product_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/1", nil))

	if n := testutil.CollectAndCount(m.HTTPDuration); n != 1 {
		t.Fatalf("expected one series, got %d", n)
	}
}
