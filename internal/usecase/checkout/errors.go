package checkout

import (
	"errors"
	"fmt"
	"strings"

	"stuff3d_checkout/internal/domain/entities"
)

var (
	ErrSessionClosed       = errors.New("checkout session closed")
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrAttemptInFlight     = errors.New("a payment attempt is already in flight")
	ErrAttemptFinished     = errors.New("payment attempt finished; select a payment method to start a new one")
	ErrMethodNotSelected   = errors.New("payment method not selected")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidInstallments = errors.New("installment option not offered")
	ErrPaymentExpired      = errors.New("payment confirmation timed out")
	ErrPollerStarted       = errors.New("status poller already started")
	ErrIncompleteRequest   = errors.New("incomplete payment request")
)

// BuildError lists the method-specific fields missing from a payment request.
type BuildError struct {
	Method  entities.PaymentMethod
	Missing []string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s for %s: missing %s", ErrIncompleteRequest, e.Method, strings.Join(e.Missing, ", "))
}

func (e *BuildError) Unwrap() error { return ErrIncompleteRequest }
