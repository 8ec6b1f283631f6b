package request

import (
	"encoding/json"
	"net/url"
	"testing"

	"stuff3d_checkout/internal/domain/entities"
)

func TestCreatePaymentRequest_ToEntity(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entities.PaymentRequest
	}{
		{
			name: "nested customer",
			body: `{"payment_method":"PIX","product_id":" 1 ","quantity":2,"customer":{"name":"Maria","email":"m@x.com","document":"529.982.247-25"}}`,
			want: entities.PaymentRequest{Method: entities.PaymentMethodPix, ProductID: "1", Quantity: 2,
				Customer: entities.CustomerData{Name: "Maria", Email: "m@x.com", Document: "529.982.247-25"}},
		},
		{
			name: "flat customer and default quantity",
			body: `{"payment_method":"credit_card","product_id":"3","customer_name":"João","customer_email":"j@x.com","customer_document":"52998224725","installments":3,"card_token":"tok","card_payment_method_id":"master"}`,
			want: entities.PaymentRequest{Method: entities.PaymentMethodCreditCard, ProductID: "3", Quantity: 1,
				Customer:     entities.CustomerData{Name: "João", Email: "j@x.com", Document: "52998224725"},
				Installments: 3, CardToken: "tok", CardPaymentMethodID: "master"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreatePaymentRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := req.ToEntity(); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestWebhookRequest_ToEntity(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		query     url.Values
		wantID    string
		isPayment bool
	}{
		{name: "webhook body with numeric id", body: `{"type":"payment","action":"payment.updated","data":{"id":123456789012}}`, wantID: "123456789012", isPayment: true},
		{name: "webhook body with string id", body: `{"type":"payment","data":{"id":"42"}}`, wantID: "42", isPayment: true},
		{name: "ipn query", body: `{}`, query: url.Values{"topic": {"payment"}, "id": {"77"}}, wantID: "77", isPayment: true},
		{name: "resource url", body: `{"topic":"payment","resource":"https://api.mercadopago.com/v1/payments/88"}`, wantID: "88", isPayment: true},
		{name: "merchant order", body: `{"topic":"merchant_order","id":5}`, query: url.Values{}, wantID: "", isPayment: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req WebhookRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			n := req.ToEntity(tt.query.Get)
			if n.PaymentID() != tt.wantID || n.IsPayment() != tt.isPayment {
				t.Fatalf("expected id=%q payment=%v, got id=%q payment=%v", tt.wantID, tt.isPayment, n.PaymentID(), n.IsPayment())
			}
		})
	}
}
