package checkout

import (
	"strings"

	"stuff3d_checkout/internal/domain/entities"
)

// CardDetails is what the client-side tokenization hands over. The token is
// opaque to this package.
type CardDetails struct {
	Token           string
	IssuerID        string
	PaymentMethodID string
	Installments    int
}

type BuildInput struct {
	Customer entities.CustomerData
	Product  entities.Product
	Quantity int
	Method   entities.PaymentMethod
	Card     CardDetails
}

// RequestBuilder assembles method-specific payment requests.
type RequestBuilder struct{}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

// Build expects customer data that already passed identity validation.
func (b *RequestBuilder) Build(in BuildInput) (entities.PaymentRequest, error) {
	if !in.Method.Valid() {
		return entities.PaymentRequest{}, ErrUnknownMethod
	}
	if in.Quantity < 1 {
		return entities.PaymentRequest{}, ErrInvalidQuantity
	}

	var missing []string
	if strings.TrimSpace(in.Product.ID) == "" {
		missing = append(missing, "product_id")
	}

	req := entities.PaymentRequest{
		Method:    in.Method,
		ProductID: in.Product.ID,
		Quantity:  in.Quantity,
		Customer:  in.Customer.Normalized(),
	}

	switch in.Method {
	case entities.PaymentMethodCreditCard:
		if in.Card.Installments < 1 {
			missing = append(missing, "installments")
		}
		if strings.TrimSpace(in.Card.Token) == "" {
			missing = append(missing, "card_token")
		}
		if strings.TrimSpace(in.Card.IssuerID) == "" && strings.TrimSpace(in.Card.PaymentMethodID) == "" {
			missing = append(missing, "issuer_id")
		}
		req.Installments = in.Card.Installments
		req.CardToken = strings.TrimSpace(in.Card.Token)
		req.IssuerID = strings.TrimSpace(in.Card.IssuerID)
		req.CardPaymentMethodID = strings.TrimSpace(in.Card.PaymentMethodID)
	case entities.PaymentMethodPix, entities.PaymentMethodBoleto:
		// no extras
	}

	if len(missing) > 0 {
		return entities.PaymentRequest{}, &BuildError{Method: in.Method, Missing: missing}
	}
	return req, nil
}
