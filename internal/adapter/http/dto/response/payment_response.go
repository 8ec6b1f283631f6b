package response

import (
	"time"

	"stuff3d_checkout/internal/domain/entities"
)

// PaymentResponse mirrors entities.PaymentResult so that gateway clients can
// decode it directly, plus a customer-facing message.
type PaymentResponse struct {
	PaymentID         string         `json:"payment_id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail,omitempty"`
	PaymentMethod     string         `json:"payment_method,omitempty"`
	Amount            entities.Money `json:"amount"`
	AmountLabel       string         `json:"amount_label"`
	Installments      int            `json:"installments,omitempty"`
	QRCode            string         `json:"qr_code,omitempty"`
	QRCodeBase64      string         `json:"qr_code_base64,omitempty"`
	TicketURL         string         `json:"ticket_url,omitempty"`
	Barcode           string         `json:"barcode,omitempty"`
	ExternalReference string         `json:"external_reference,omitempty"`
	ExpiresAt         *time.Time     `json:"expires_at,omitempty"`
	ApprovedAt        *time.Time     `json:"approved_at,omitempty"`
	Message           string         `json:"message,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResponse {
	return PaymentResponse{
		PaymentID:         r.PaymentID,
		Status:            string(r.Status),
		StatusDetail:      r.StatusDetail,
		PaymentMethod:     string(r.Method),
		Amount:            r.Amount,
		AmountLabel:       r.Amount.String(),
		Installments:      r.Installments,
		QRCode:            r.QRCode,
		QRCodeBase64:      r.QRCodeBase64,
		TicketURL:         r.TicketURL,
		Barcode:           r.Barcode,
		ExternalReference: r.ExternalReference,
		ExpiresAt:         r.ExpiresAt,
		ApprovedAt:        r.ApprovedAt,
		Message:           StatusMessage(r.Method, r.Status, r.StatusDetail),
	}
}

// StatusMessage is the text the checkout shows for a payment outcome.
func StatusMessage(method entities.PaymentMethod, status entities.PaymentStatus, detail string) string {
	switch status {
	case entities.PaymentStatusApproved:
		return "Pagamento aprovado! Você receberá um email de confirmação."
	case entities.PaymentStatusRejected:
		if detail == "cc_rejected_insufficient_amount" {
			return "Pagamento recusado: saldo insuficiente."
		}
		return "Pagamento recusado. Verifique os dados do cartão ou tente outro método."
	}
	switch method {
	case entities.PaymentMethodPix:
		return "Escaneie o QR Code ou copie o código PIX para pagar. O código expira em 30 minutos."
	case entities.PaymentMethodBoleto:
		return "Boleto gerado! O pagamento pode levar até 3 dias úteis para ser compensado."
	case entities.PaymentMethodCreditCard:
		return "Pagamento em análise. Você será notificado assim que for aprovado."
	}
	return "Pagamento criado com sucesso"
}

type InstallmentsResponse struct {
	ProductID    string                       `json:"product_id"`
	ProductPrice entities.Money               `json:"product_price"`
	Options      []entities.InstallmentOption `json:"options"`
}

func FromInstallmentOptions(productID string, options []entities.InstallmentOption) InstallmentsResponse {
	res := InstallmentsResponse{ProductID: productID, Options: options}
	if res.Options == nil {
		res.Options = []entities.InstallmentOption{}
	}
	if len(options) > 0 {
		res.ProductPrice = options[0].TotalAmount
	}
	return res
}

type WebhookResponse struct {
	Status string `json:"status"`
}
