package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"stuff3d_checkout/internal/domain/entities"
)

// ErrProviderPaymentNotFound is wrapped by gateways when the provider does not
// know the payment id.
var ErrProviderPaymentNotFound = errors.New("provider payment not found")

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The payment use case builds the provider payload, and keeps the raw provider
// response for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}

// IPaymentObserver receives payment lifecycle events (metrics).
type IPaymentObserver interface {
	PaymentCreated(method entities.PaymentMethod, status entities.PaymentStatus)
	GatewayFailed(op string, reason string)
}
