package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/adapter/http/dto/request"
	"stuff3d_checkout/internal/adapter/http/dto/response"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/pkg"
)

// PaymentHandler exposes the payment API used by the checkout.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, log: log}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Description  Charges the catalog price of the product times the quantity through PIX, card or boleto.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.CreatePaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Info("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment := req.ToEntity()
	h.log.Info("[payment][handler] create start",
		zap.String("product_id", payment.ProductID),
		zap.String("payment_method", string(payment.Method)))

	result, err := h.usecase.CreatePayment(c.Request.Context(), payment)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("product_id", payment.ProductID), zap.Error(err))
		writeError(c, mapPaymentError(err), err)
		return
	}
	h.log.Info("[payment][handler] create success",
		zap.String("payment_id", result.PaymentID),
		zap.String("status", string(result.Status)))

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// GetStatus godoc
// @Summary      Payment status
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.PaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/status [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	result, err := h.usecase.GetStatus(c.Request.Context(), paymentID)
	if err != nil {
		h.log.Warn("[payment][handler] status failed", zap.String("payment_id", paymentID), zap.Error(err))
		writeError(c, mapPaymentError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// InstallmentOptions godoc
// @Summary      Installment options for a product
// @Tags         payments
// @Produce      json
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  response.InstallmentsResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /products/{product_id}/installments [get]
func (h *PaymentHandler) InstallmentOptions(c *gin.Context) {
	productID := c.Param("product_id")

	options, err := h.usecase.InstallmentOptions(c.Request.Context(), productID)
	if err != nil {
		h.log.Warn("[payment][handler] installments failed", zap.String("product_id", productID), zap.Error(err))
		writeError(c, mapPaymentError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallmentOptions(productID, options))
}

// Webhook godoc
// @Summary      Mercado Pago notification
// @Description  Refreshes the payment named by the notification. Non-payment topics are acknowledged and ignored.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var body request.WebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.log.Info("[payment][webhook] invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}
	notification := body.ToEntity(c.Query)

	err := h.usecase.HandleNotification(c.Request.Context(), notification)
	switch {
	case errors.Is(err, usecase.ErrInvalidNotification):
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Notification without payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	case errors.Is(err, usecase.ErrPaymentNotFound):
		// unknown to the provider: nothing to retry
		h.log.Warn("[payment][webhook] payment not found", zap.String("payment_id", notification.PaymentID()))
	case err != nil:
		// the provider retries notifications answered with an error
		h.log.Error("[payment][webhook] refresh failed", zap.String("payment_id", notification.PaymentID()), zap.Error(err))
		writeError(c, mapPaymentError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Status: "received"})
}

func mapPaymentError(err error) *pkg.AppError {
	var verr *identity.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("INVALID_CUSTOMER_DATA", "Invalid customer data", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrUnsupportedPaymentMethod),
		errors.Is(err, usecase.ErrInvalidInstallments), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCardTokenRequired):
		return pkg.NewDomainErrorSimple("CARD_TOKEN_REQUIRED", "Card token is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock for the requested quantity", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider failed", err, http.StatusBadGateway)
	}
}

// writeError adds field violations to the body when err carries them.
func writeError(c *gin.Context, appErr *pkg.AppError, err error) {
	var verr *identity.ValidationError
	if errors.As(err, &verr) {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(verr.Violations))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
