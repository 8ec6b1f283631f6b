package interfaces

import (
	"context"
	"encoding/json"
	"stuff3d_checkout/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for PaymentRecord.
//
// GetByID returns a zero record (empty ID) when the payment is unknown.
// List scans every record; it backs the admin sales summary.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	List(ctx context.Context) ([]entities.PaymentRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, statusDetail string, providerResponse json.RawMessage) (entities.PaymentRecord, error)
}
