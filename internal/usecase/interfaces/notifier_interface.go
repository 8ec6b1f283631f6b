package interfaces

import (
	"context"

	"stuff3d_checkout/internal/domain/entities"
)

// INotifier sends customer e-mails about a payment.
//
// PaymentPending carries the result so PIX and boleto instructions can be
// included. Callers treat failures as non-fatal.
type INotifier interface {
	PaymentPending(ctx context.Context, rec entities.PaymentRecord, result entities.PaymentResult) error
	PaymentApproved(ctx context.Context, rec entities.PaymentRecord) error
}
