package interfaces

import (
	"context"

	"stuff3d_checkout/internal/domain/entities"
)

// IGatewayClient is the capability the checkout orchestrator uses to reach the
// payment API. Implementations never retry; failures are *entities.GatewayError.
type IGatewayClient interface {
	Create(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error)
	FetchInstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error)
}
