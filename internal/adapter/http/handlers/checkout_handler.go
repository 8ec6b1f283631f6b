package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/adapter/http/dto/request"
	"stuff3d_checkout/internal/adapter/http/dto/response"
	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/domain/identity"
	"stuff3d_checkout/internal/usecase/checkout"
	"stuff3d_checkout/pkg"
)

// CheckoutHandler drives server-side checkout sessions, one per open
// checkout modal.
type CheckoutHandler struct {
	sessions *checkout.SessionRegistry
	log      *zap.Logger
}

func NewCheckoutHandler(sessions *checkout.SessionRegistry, log *zap.Logger) *CheckoutHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutHandler{sessions: sessions, log: log}
}

// Open godoc
// @Summary      Open a checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        session  body      request.OpenSessionRequest  true  "Product"
// @Success      201      {object}  response.SessionResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /checkout/sessions [post]
func (h *CheckoutHandler) Open(c *gin.Context) {
	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	id, orch, err := h.sessions.Open(c.Request.Context(), req.ProductID)
	if err != nil {
		h.log.Warn("[checkout][handler] open failed", zap.String("product_id", req.ProductID), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(id, orch.Snapshot()))
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	id, orch, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(id, orch.Snapshot()))
}

func (h *CheckoutHandler) Close(c *gin.Context) {
	if err := h.sessions.Close(c.Param("session_id")); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) UpdateCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.mutate(c, func(o *checkout.Orchestrator) error {
		return o.UpdateCustomer(req.ToEntity())
	})
}

func (h *CheckoutHandler) SetQuantity(c *gin.Context) {
	var req request.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.mutate(c, func(o *checkout.Orchestrator) error {
		return o.SetQuantity(req.Quantity)
	})
}

func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req request.MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.mutate(c, func(o *checkout.Orchestrator) error {
		return o.SelectMethod(req.ToEntity())
	})
}

func (h *CheckoutHandler) SelectInstallments(c *gin.Context) {
	var req request.InstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.mutate(c, func(o *checkout.Orchestrator) error {
		return o.SelectInstallments(req.Installments)
	})
}

func (h *CheckoutHandler) SetCard(c *gin.Context) {
	var req request.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	h.mutate(c, func(o *checkout.Orchestrator) error {
		return o.SetCard(req.ToCardDetails())
	})
}

// Submit godoc
// @Summary      Submit the payment
// @Tags         checkout
// @Produce      json
// @Param        session_id  path      string  true  "Checkout session ID"
// @Success      200         {object}  response.SessionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  response.SessionResponse
// @Failure      502         {object}  response.SessionResponse
// @Router       /checkout/sessions/{session_id}/submit [post]
//
// Submit answers with the session snapshot. Validation, build and gateway
// failures still carry the snapshot (violations and error included) with a
// non-2xx status; state conflicts answer with a plain error body.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, orch, ok := h.session(c)
	if !ok {
		return
	}

	snap, err := orch.Submit(c.Request.Context())
	if err == nil {
		h.log.Info("[checkout][handler] submitted",
			zap.String("session_id", id), zap.String("state", string(snap.State)))
		c.JSON(http.StatusOK, response.FromSnapshot(id, snap))
		return
	}

	h.log.Info("[checkout][handler] submit failed", zap.String("session_id", id), zap.Error(err))
	appErr := mapCheckoutError(err)
	var (
		verr *identity.ValidationError
		berr *checkout.BuildError
		gerr *entities.GatewayError
	)
	if errors.As(err, &verr) || errors.As(err, &berr) || errors.As(err, &gerr) {
		c.JSON(appErr.HTTPStatus, response.FromSnapshot(id, snap))
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func (h *CheckoutHandler) session(c *gin.Context) (string, *checkout.Orchestrator, bool) {
	id := c.Param("session_id")
	orch, err := h.sessions.Get(id)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", nil, false
	}
	return id, orch, true
}

func (h *CheckoutHandler) mutate(c *gin.Context, fn func(*checkout.Orchestrator) error) {
	id, orch, ok := h.session(c)
	if !ok {
		return
	}
	if err := fn(orch); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(id, orch.Snapshot()))
}

func invalidRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	var (
		verr *identity.ValidationError
		berr *checkout.BuildError
		gerr *entities.GatewayError
	)
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("INVALID_CUSTOMER_DATA", "Invalid customer data", err, http.StatusUnprocessableEntity)
	case errors.As(err, &berr):
		return pkg.NewDomainError("INCOMPLETE_PAYMENT_DATA", "Incomplete payment data", err, http.StatusUnprocessableEntity)
	case errors.As(err, &gerr):
		status := http.StatusBadGateway
		if gerr.StatusCode >= 400 && gerr.StatusCode < 500 {
			status = gerr.StatusCode
		}
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment could not be processed", err, status)
	case errors.Is(err, checkout.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, checkout.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, checkout.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Checkout session closed", http.StatusGone)
	case errors.Is(err, checkout.ErrAttemptInFlight):
		return pkg.NewDomainErrorSimple("ATTEMPT_IN_FLIGHT", "A payment is already being processed", http.StatusConflict)
	case errors.Is(err, checkout.ErrAttemptFinished):
		return pkg.NewDomainErrorSimple("ATTEMPT_FINISHED", "Payment attempt finished; select a payment method to try again", http.StatusConflict)
	case errors.Is(err, checkout.ErrMethodNotSelected):
		return pkg.NewDomainErrorSimple("METHOD_NOT_SELECTED", "Select a payment method first", http.StatusConflict)
	case errors.Is(err, checkout.ErrUnknownMethod), errors.Is(err, checkout.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrInvalidInstallments):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
