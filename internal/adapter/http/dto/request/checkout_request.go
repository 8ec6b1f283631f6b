package request

import (
	"strings"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/checkout"
)

type OpenSessionRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type InstallmentsRequest struct {
	Installments int `json:"installments" binding:"required,min=1"`
}

type MethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r MethodRequest) ToEntity() entities.PaymentMethod {
	return entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
}

// CardRequest carries the tokenized card produced by the provider's card
// form. Raw card numbers never reach this service.
type CardRequest struct {
	Token           string `json:"token" binding:"required"`
	IssuerID        string `json:"issuer_id"`
	PaymentMethodID string `json:"payment_method_id"`
	Installments    int    `json:"installments" binding:"omitempty,min=1"`
}

func (r CardRequest) ToCardDetails() checkout.CardDetails {
	return checkout.CardDetails{
		Token:           strings.TrimSpace(r.Token),
		IssuerID:        strings.TrimSpace(r.IssuerID),
		PaymentMethodID: strings.TrimSpace(r.PaymentMethodID),
		Installments:    r.Installments,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
