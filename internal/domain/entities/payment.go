package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentMethod is the tag of the payment variant chosen in the modal.
//
//   - pix: instant transfer, yields a redeemable QR code confirmed asynchronously
//   - credit_card: tokenized card, confirmed synchronously by the processor
//   - boleto: voucher document settled out of band within days
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodBoleto:
		return true
	}
	return false
}

// PaymentStatus is the normalized payment outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// NormalizeProviderStatus folds Mercado Pago statuses into the three the
// checkout understands.
func NormalizeProviderStatus(providerStatus string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		// pending, in_process, in_mediation, authorized
		return PaymentStatusPending
	}
}

// PaymentRequest is the method-specific payment creation payload.
type PaymentRequest struct {
	Method    PaymentMethod `json:"payment_method"`
	ProductID string        `json:"product_id"`
	Quantity  int           `json:"quantity"`
	Customer  CustomerData  `json:"customer"`

	// credit_card only
	Installments        int    `json:"installments,omitempty"`
	CardToken           string `json:"card_token,omitempty"`
	IssuerID            string `json:"issuer_id,omitempty"`
	CardPaymentMethodID string `json:"card_payment_method_id,omitempty"`
}

// PaymentResult is what the gateway reports for a payment.
//
// Method-specific payload:
//   - pix: QRCode (copy-and-paste code), QRCodeBase64, TicketURL
//   - boleto: TicketURL (document), Barcode
//   - credit_card: none
type PaymentResult struct {
	PaymentID         string        `json:"payment_id"`
	Status            PaymentStatus `json:"status"`
	StatusDetail      string        `json:"status_detail,omitempty"`
	Method            PaymentMethod `json:"payment_method,omitempty"`
	Amount            Money         `json:"amount"`
	Installments      int           `json:"installments,omitempty"`
	QRCode            string        `json:"qr_code,omitempty"`
	QRCodeBase64      string        `json:"qr_code_base64,omitempty"`
	TicketURL         string        `json:"ticket_url,omitempty"`
	Barcode           string        `json:"barcode,omitempty"`
	ExternalReference string        `json:"external_reference,omitempty"`
	ExpiresAt         *time.Time    `json:"expires_at,omitempty"`
	ApprovedAt        *time.Time    `json:"approved_at,omitempty"`
}

// PaymentRecord is the payment entity persisted by the gateway side.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the last provider body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
type PaymentRecord struct {
	ID                string        `json:"id"`
	ExternalReference string        `json:"external_reference"`
	ProductID         string        `json:"product_id"`
	ProductName       string        `json:"product_name"`
	Method            PaymentMethod `json:"payment_method"`
	Status            PaymentStatus `json:"status"`
	StatusDetail      string        `json:"status_detail,omitempty"`
	Amount            Money         `json:"amount"`
	Quantity          int           `json:"quantity"`
	Installments      int           `json:"installments"`
	CustomerName      string        `json:"customer_name"`
	CustomerEmail     string        `json:"customer_email"`
	CustomerDocument  string        `json:"customer_document"`
	Date              time.Time     `json:"date"`
	UpdatedAt         time.Time     `json:"updated_at"`
	ApprovedAt        *time.Time    `json:"approved_at,omitempty"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentNotification is a provider webhook call.
type PaymentNotification struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Type     string `json:"type"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Data     struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PaymentID resolves the payment id from either notification format.
func (n PaymentNotification) PaymentID() string {
	if id := strings.TrimSpace(n.Data.ID); id != "" {
		return id
	}
	if n.Resource != "" {
		parts := strings.Split(strings.TrimRight(n.Resource, "/"), "/")
		return parts[len(parts)-1]
	}
	return ""
}

// IsPayment reports whether the notification concerns a payment.
func (n PaymentNotification) IsPayment() bool {
	return n.Topic == "payment" || n.Type == "payment"
}
