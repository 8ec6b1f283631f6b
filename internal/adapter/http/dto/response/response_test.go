package response

import (
	"errors"
	"testing"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/internal/usecase/checkout"
)

func TestFromPaymentResult(t *testing.T) {
	res := FromPaymentResult(entities.PaymentResult{
		PaymentID: "123",
		Status:    entities.PaymentStatusPending,
		Method:    entities.PaymentMethodPix,
		Amount:    9000,
		QRCode:    "000201",
	})
	if res.PaymentID != "123" || res.Status != "pending" || res.PaymentMethod != "pix" || res.QRCode != "000201" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.AmountLabel != "R$ 90,00" {
		t.Fatalf("unexpected amount label %q", res.AmountLabel)
	}
	if res.Message == "" {
		t.Fatalf("expected a message")
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		method entities.PaymentMethod
		status entities.PaymentStatus
		detail string
		want   string
	}{
		{entities.PaymentMethodCreditCard, entities.PaymentStatusApproved, "accredited", "Pagamento aprovado! Você receberá um email de confirmação."},
		{entities.PaymentMethodCreditCard, entities.PaymentStatusRejected, "cc_rejected_insufficient_amount", "Pagamento recusado: saldo insuficiente."},
		{entities.PaymentMethodCreditCard, entities.PaymentStatusPending, "pending_contingency", "Pagamento em análise. Você será notificado assim que for aprovado."},
		{entities.PaymentMethodBoleto, entities.PaymentStatusPending, "", "Boleto gerado! O pagamento pode levar até 3 dias úteis para ser compensado."},
	}
	for _, tt := range tests {
		if got := StatusMessage(tt.method, tt.status, tt.detail); got != tt.want {
			t.Fatalf("%s/%s: expected %q, got %q", tt.method, tt.status, tt.want, got)
		}
	}
}

func TestFromInstallmentOptions(t *testing.T) {
	empty := FromInstallmentOptions("1", nil)
	if empty.Options == nil || len(empty.Options) != 0 {
		t.Fatalf("expected empty options slice")
	}

	res := FromInstallmentOptions("1", []entities.InstallmentOption{{Installments: 1, TotalAmount: 4500}})
	if res.ProductPrice != 4500 {
		t.Fatalf("expected product price 4500, got %d", res.ProductPrice)
	}
}

func TestFromSnapshot(t *testing.T) {
	snap := checkout.Snapshot{
		State:    checkout.StateExpired,
		Product:  entities.Product{ID: "1", Name: "Miniatura de Personagem", Price: 4500},
		Quantity: 3,
		Method:   entities.PaymentMethodPix,
		Result:   &entities.PaymentResult{PaymentID: "9", Status: entities.PaymentStatusPending, Method: entities.PaymentMethodPix},
		Err:      errors.New("payment confirmation timed out"),
	}

	res := FromSnapshot("sess-1", snap)
	if res.SessionID != "sess-1" || res.State != "expired" || !res.Terminal {
		t.Fatalf("unexpected state fields: %+v", res)
	}
	if res.Total != 13500 || res.TotalLabel != "R$ 135,00" {
		t.Fatalf("unexpected total %d %q", res.Total, res.TotalLabel)
	}
	if res.Result == nil || res.Result.PaymentID != "9" || res.Result.Message == "" {
		t.Fatalf("unexpected result %+v", res.Result)
	}
	if res.Error != "payment confirmation timed out" {
		t.Fatalf("unexpected error %q", res.Error)
	}
	if res.InstallmentOptions == nil {
		t.Fatalf("expected non-nil installment options")
	}
}

func TestFromInventoryItem(t *testing.T) {
	res := FromInventoryItem(usecase.InventoryItem{
		Product: entities.Product{ID: "1", Name: "Miniatura", Price: 4500},
		Stock:   entities.Stock{ProductID: "1", Available: 0, Reserved: 2, Sold: 7, ReorderLevel: 10},
	})
	if res.Status != "out_of_stock" || !res.NeedsRestock || res.Sold != 7 || res.ProductName != "Miniatura" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromSalesSummary(t *testing.T) {
	res := FromSalesSummary(usecase.SalesSummary{ByStatus: map[entities.PaymentStatus]usecase.SalesBucket{
		entities.PaymentStatusApproved: {Count: 2, Total: 12500},
	}})
	got := res.SalesSummary["approved"]
	if got.Count != 2 || got.TotalLabel != "R$ 125,00" {
		t.Fatalf("unexpected bucket: %+v", got)
	}
}
