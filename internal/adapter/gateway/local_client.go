package gateway

import (
	"context"
	"errors"
	"net/http"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/internal/usecase/interfaces"
)

// LocalClient serves checkout sessions from the payment use case running in
// the same process. Errors carry the status the HTTP API would have answered.
type LocalClient struct {
	payments usecase.IPaymentUseCase
}

var _ interfaces.IGatewayClient = (*LocalClient)(nil)

func NewLocalClient(payments usecase.IPaymentUseCase) *LocalClient {
	return &LocalClient{payments: payments}
}

func (c *LocalClient) Create(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	res, err := c.payments.CreatePayment(ctx, req)
	if err != nil {
		return entities.PaymentResult{}, toGatewayError("create", err)
	}
	return res, nil
}

func (c *LocalClient) GetStatus(ctx context.Context, paymentID string) (entities.PaymentResult, error) {
	res, err := c.payments.GetStatus(ctx, paymentID)
	if err != nil {
		return entities.PaymentResult{}, toGatewayError("status", err)
	}
	return res, nil
}

func (c *LocalClient) FetchInstallmentOptions(ctx context.Context, productID string) ([]entities.InstallmentOption, error) {
	options, err := c.payments.InstallmentOptions(ctx, productID)
	if err != nil {
		return nil, toGatewayError("installments", err)
	}
	return options, nil
}

func toGatewayError(op string, err error) *entities.GatewayError {
	status, code := http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR"

	var verr *identity.ValidationError
	switch {
	case errors.As(err, &verr):
		status, code = http.StatusUnprocessableEntity, "INVALID_CUSTOMER_DATA"
	case errors.Is(err, usecase.ErrPaymentNotFound):
		status, code = http.StatusNotFound, "PAYMENT_NOT_FOUND"
	case errors.Is(err, usecase.ErrProductNotFound):
		status, code = http.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, usecase.ErrOutOfStock):
		status, code = http.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrUnsupportedPaymentMethod),
		errors.Is(err, usecase.ErrCardTokenRequired),
		errors.Is(err, usecase.ErrInvalidInstallments):
		status, code = http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest),
		errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers),
		errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		status, code = http.StatusUnprocessableEntity, "PAYMENT_REFUSED_BY_PROVIDER"
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured),
		errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		status, code = http.StatusServiceUnavailable, "PAYMENT_GATEWAY_UNAVAILABLE"
	}
	return &entities.GatewayError{Op: op, StatusCode: status, Code: code, Message: err.Error(), Err: err}
}
