package request

import (
	"strconv"
	"strings"

	"stuff3d_checkout/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (r CustomerRequest) ToEntity() entities.CustomerData {
	return entities.CustomerData{Name: r.Name, Email: r.Email, Document: r.Document}
}

// CreatePaymentRequest is the payload of POST /payments.
//
// Customer fields are accepted nested under "customer" or flat
// (customer_name, customer_email, customer_document); nested values win.
type CreatePaymentRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	ProductID     string          `json:"product_id" binding:"required"`
	Quantity      int             `json:"quantity" binding:"omitempty,min=1"`
	Customer      CustomerRequest `json:"customer"`

	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerDocument string `json:"customer_document"`

	Installments        int    `json:"installments" binding:"omitempty,min=1"`
	CardToken           string `json:"card_token"`
	IssuerID            string `json:"issuer_id"`
	CardPaymentMethodID string `json:"card_payment_method_id"`
}

// ToEntity defaults the quantity to 1.
func (r CreatePaymentRequest) ToEntity() entities.PaymentRequest {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return entities.PaymentRequest{
		Method:    entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		ProductID: strings.TrimSpace(r.ProductID),
		Quantity:  quantity,
		Customer: entities.CustomerData{
			Name:     firstNonEmpty(r.Customer.Name, r.CustomerName),
			Email:    firstNonEmpty(r.Customer.Email, r.CustomerEmail),
			Document: firstNonEmpty(r.Customer.Document, r.CustomerDocument),
		},
		Installments:        r.Installments,
		CardToken:           strings.TrimSpace(r.CardToken),
		IssuerID:            strings.TrimSpace(r.IssuerID),
		CardPaymentMethodID: strings.TrimSpace(r.CardPaymentMethodID),
	}
}

// WebhookRequest is a Mercado Pago notification body. IPN-style calls send
// topic and id as query parameters instead.
type WebhookRequest struct {
	ID       any    `json:"id"`
	Topic    string `json:"topic"`
	Type     string `json:"type"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Data     struct {
		ID any `json:"id"`
	} `json:"data"`
}

// ToEntity merges the body with the query parameters topic, type, id and
// data.id.
func (r WebhookRequest) ToEntity(query func(string) string) entities.PaymentNotification {
	n := entities.PaymentNotification{
		ID:       anyToString(r.ID),
		Topic:    firstNonEmpty(r.Topic, query("topic")),
		Type:     firstNonEmpty(r.Type, query("type")),
		Action:   r.Action,
		Resource: r.Resource,
	}
	n.Data.ID = firstNonEmpty(anyToString(r.Data.ID), query("data.id"))
	if n.Data.ID == "" && n.Resource == "" && (n.Topic == "payment" || n.Type == "payment") {
		n.Data.ID = query("id")
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Mercado Pago sends numeric ids in some payloads and strings in others.
func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
