package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stuff3d_checkout/internal/usecase/interfaces"
	"stuff3d_checkout/pkg/clock"
)

func newMockGateway(t *testing.T, approveAfter time.Duration) (*MercadoPagoGateway, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	g, err := NewMercadoPagoGateway(Options{Mock: true, MockPixApproveAfter: approveAfter, Clock: c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g, c
}

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway(Options{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	g, err := NewMercadoPagoGateway(Options{AccessToken: "TEST-0000"})
	if err != nil || g.client == nil || g.mock != nil {
		t.Fatalf("expected a real client, got %+v err=%v", g, err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_InvalidPaymentID(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{AccessToken: "TEST-0000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, interfaces.ErrProviderPaymentNotFound) {
		t.Fatalf("expected ErrProviderPaymentNotFound, got %v", err)
	}
}

func TestMercadoPagoGateway_MockCreate(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantStatus string
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "pix is pending with a QR code",
			payload:    `{"payment_method_id":"pix","transaction_amount":45}`,
			wantStatus: "pending",
			check: func(t *testing.T, body map[string]any) {
				poi := body["point_of_interaction"].(map[string]any)["transaction_data"].(map[string]any)
				if poi["qr_code"] == "" || poi["qr_code_base64"] == "" {
					t.Fatalf("expected qr data, got %v", poi)
				}
			},
		},
		{
			name:       "boleto is pending with a ticket",
			payload:    `{"payment_method_id":"bolbradesco","transaction_amount":45}`,
			wantStatus: "pending",
			check: func(t *testing.T, body map[string]any) {
				td := body["transaction_details"].(map[string]any)
				if td["external_resource_url"] == "" {
					t.Fatalf("expected ticket url")
				}
				if body["barcode"].(map[string]any)["content"] == "" {
					t.Fatalf("expected barcode")
				}
			},
		},
		{
			name:       "card is approved",
			payload:    `{"payment_method_id":"visa","token":"tok_123","installments":3}`,
			wantStatus: "approved",
			check: func(t *testing.T, body map[string]any) {
				if body["date_approved"] == nil {
					t.Fatalf("expected date_approved")
				}
			},
		},
		{
			name:       "card rejected by token marker",
			payload:    `{"payment_method_id":"visa","token":"tok_reject"}`,
			wantStatus: "rejected",
		},
		{
			name:       "card in process by token marker",
			payload:    `{"payment_method_id":"master","token":"tok_pending"}`,
			wantStatus: "in_process",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newMockGateway(t, 0)
			id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(tt.payload))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id == "" || status != tt.wantStatus {
				t.Fatalf("expected status %s with an id, got id=%q status=%s", tt.wantStatus, id, status)
			}
			var body map[string]any
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("invalid response: %v", err)
			}
			if body["id"] != id {
				t.Fatalf("expected id %s in body, got %v", id, body["id"])
			}
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func TestMercadoPagoGateway_MockPixApproval(t *testing.T) {
	g, c := newMockGateway(t, 15*time.Second)
	ctx := context.Background()

	id, _, _, err := g.CreatePayment(ctx, json.RawMessage(`{"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, _, _, _ := g.CreatePayment(ctx, json.RawMessage(`{"payment_method_id":"pix"}`))
	if id == id2 {
		t.Fatalf("expected distinct ids")
	}

	c.Advance(10 * time.Second)
	if status, _, err := g.GetPayment(ctx, id); err != nil || status != "pending" {
		t.Fatalf("expected pending, got %s err=%v", status, err)
	}

	c.Advance(5 * time.Second)
	status, raw, err := g.GetPayment(ctx, id)
	if err != nil || status != "approved" {
		t.Fatalf("expected approved, got %s err=%v", status, err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["status_detail"] != "accredited" || body["date_approved"] == nil {
		t.Fatalf("unexpected body %v", body)
	}

	if _, _, err := g.GetPayment(ctx, "999"); !errors.Is(err, interfaces.ErrProviderPaymentNotFound) {
		t.Fatalf("expected ErrProviderPaymentNotFound, got %v", err)
	}
}
