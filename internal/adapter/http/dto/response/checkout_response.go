package response

import (
	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/usecase/checkout"
)

type CustomerResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

// SessionResponse is the checkout modal state as the storefront renders it.
type SessionResponse struct {
	SessionID          string                       `json:"session_id"`
	State              string                       `json:"state"`
	Terminal           bool                         `json:"terminal"`
	Product            ProductResponse              `json:"product"`
	Quantity           int                          `json:"quantity"`
	Total              entities.Money               `json:"total"`
	TotalLabel         string                       `json:"total_label"`
	Customer           CustomerResponse             `json:"customer"`
	PaymentMethod      string                       `json:"payment_method,omitempty"`
	InstallmentOptions []entities.InstallmentOption `json:"installment_options"`
	Installments       int                          `json:"installments"`
	CardReady          bool                         `json:"card_ready"`
	Polling            bool                         `json:"polling"`
	Result             *PaymentResponse             `json:"result,omitempty"`
	Violations         []identity.Violation         `json:"violations,omitempty"`
	Error              string                       `json:"error,omitempty"`
}

func FromSnapshot(sessionID string, s checkout.Snapshot) SessionResponse {
	total := s.Product.Price.Mul(s.Quantity)
	res := SessionResponse{
		SessionID:  sessionID,
		State:      string(s.State),
		Terminal:   s.State.Terminal(),
		Product:    FromProduct(s.Product),
		Quantity:   s.Quantity,
		Total:      total,
		TotalLabel: total.String(),
		Customer: CustomerResponse{
			Name:     s.Customer.Name,
			Email:    s.Customer.Email,
			Document: s.Customer.Document,
		},
		PaymentMethod:      string(s.Method),
		InstallmentOptions: s.InstallmentOptions,
		Installments:       s.Installments,
		CardReady:          s.CardReady,
		Polling:            s.Polling,
		Violations:         s.Violations,
	}
	if res.InstallmentOptions == nil {
		res.InstallmentOptions = []entities.InstallmentOption{}
	}
	if s.Result != nil {
		pr := FromPaymentResult(*s.Result)
		if s.State == checkout.StateExpired {
			pr.Message = "O tempo para pagamento expirou. Gere um novo código PIX."
		}
		res.Result = &pr
	}
	if s.Err != nil {
		res.Error = s.Err.Error()
	}
	return res
}
