package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stuff3d_checkout/internal/adapter/http/handlers/mocks"
	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/payments", h.CreatePayment)
	r.POST("/v1/payments/webhook", h.Webhook)
	r.GET("/v1/payments/:payment_id/status", h.GetStatus)
	r.GET("/v1/products/:product_id/installments", h.InstallmentOptions)
	return r, uc
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"product_id":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pix created", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentRequest) (entities.PaymentResult, error) {
				if p.Method != entities.PaymentMethodPix || p.Quantity != 1 || p.Customer.Name != "Maria" {
					t.Errorf("unexpected request %+v", p)
				}
				return entities.PaymentResult{
					PaymentID: "123",
					Status:    entities.PaymentStatusPending,
					Method:    entities.PaymentMethodPix,
					Amount:    4500,
					QRCode:    "000201",
				}, nil
			})

		body := `{"payment_method":"PIX","product_id":"1","customer":{"name":"Maria","email":"maria@example.com","document":"12345678900"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["payment_id"] != "123" || got["qr_code"] != "000201" || got["amount_label"] != "R$ 45,00" {
			t.Fatalf("unexpected body %v", got)
		}
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid customer",
			err:      &identity.ValidationError{Violations: []identity.Violation{{Field: "email", Rule: "email"}}},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: "INVALID_CUSTOMER_DATA",
		},
		{name: "card token", err: usecase.ErrCardTokenRequired, wantCode: http.StatusBadRequest, wantBody: "CARD_TOKEN_REQUIRED"},
		{name: "unknown product", err: usecase.ErrProductNotFound, wantCode: http.StatusNotFound, wantBody: "PRODUCT_NOT_FOUND"},
		{name: "out of stock", err: usecase.ErrOutOfStock, wantCode: http.StatusConflict, wantBody: "OUT_OF_STOCK"},
		{name: "invalid users", err: fmt.Errorf("%w: boom", usecase.ErrPaymentGatewayInvalidUsers), wantCode: http.StatusUnprocessableEntity, wantBody: "PAYMENT_PROVIDER_INVALID_USERS"},
		{name: "not configured", err: usecase.ErrPaymentGatewayNotConfigured, wantCode: http.StatusServiceUnavailable, wantBody: "PAYMENT_GATEWAY_UNAVAILABLE"},
		{name: "provider failure", err: errors.New("timeout"), wantCode: http.StatusBadGateway, wantBody: "PAYMENT_GATEWAY_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"payment_method":"boleto","product_id":"1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.wantBody)) {
				t.Fatalf("expected %s in body, got %s", tt.wantBody, w.Body.String())
			}
		})
	}

	t.Run("violations are returned as details", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{},
			&identity.ValidationError{Violations: []identity.Violation{{Field: "document", Rule: "len", Message: "invalid"}}})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"payment_method":"pix","product_id":"1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if !bytes.Contains(w.Body.Bytes(), []byte(`"field":"document"`)) {
			t.Fatalf("expected violation details, got %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetStatus(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetStatus(gomock.Any(), "123").Return(entities.PaymentResult{
			PaymentID: "123",
			Status:    entities.PaymentStatusApproved,
			Method:    entities.PaymentMethodPix,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/status", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"approved"`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetStatus(gomock.Any(), "404").Return(entities.PaymentResult{}, usecase.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/404/status", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_InstallmentOptions(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().InstallmentOptions(gomock.Any(), "1").Return([]entities.InstallmentOption{
		{Installments: 1, InstallmentAmount: 4500, TotalAmount: 4500},
		{Installments: 2, InstallmentAmount: 2250, TotalAmount: 4500},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/1/installments", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got struct {
		ProductID string            `json:"product_id"`
		Options   []json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if got.ProductID != "1" || len(got.Options) != 2 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestPaymentHandler_Webhook(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		body     string
		err      error
		wantID   string
		wantCode int
	}{
		{name: "body data id", url: "/v1/payments/webhook", body: `{"type":"payment","data":{"id":"555"}}`, wantID: "555", wantCode: http.StatusOK},
		{name: "numeric data id", url: "/v1/payments/webhook", body: `{"type":"payment","data":{"id":12345678901}}`, wantID: "12345678901", wantCode: http.StatusOK},
		{name: "query params", url: "/v1/payments/webhook?topic=payment&id=777", wantID: "777", wantCode: http.StatusOK},
		{name: "missing id", url: "/v1/payments/webhook", body: `{"type":"payment"}`, err: usecase.ErrInvalidNotification, wantCode: http.StatusBadRequest},
		{name: "unknown payment is acknowledged", url: "/v1/payments/webhook", body: `{"type":"payment","data":{"id":"1"}}`, err: usecase.ErrPaymentNotFound, wantID: "1", wantCode: http.StatusOK},
		{name: "refresh failure is retried", url: "/v1/payments/webhook", body: `{"type":"payment","data":{"id":"2"}}`, err: errors.New("dynamo down"), wantID: "2", wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, n entities.PaymentNotification) error {
					if n.PaymentID() != tt.wantID {
						t.Errorf("expected payment id %q, got %q", tt.wantID, n.PaymentID())
					}
					return tt.err
				})

			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
