package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/adapter/http/dto/response"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/pkg"
)

// AdminHandler serves the back-office inventory and sales reports.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
	log     *zap.Logger
}

func NewAdminHandler(uc usecase.IAdminUseCase, log *zap.Logger) *AdminHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminHandler{usecase: uc, log: log}
}

// InventorySummary godoc
// @Summary      Inventory summary
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  response.InventorySummaryResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/inventory/summary [get]
func (h *AdminHandler) InventorySummary(c *gin.Context) {
	summary, err := h.usecase.InventorySummary(c.Request.Context())
	if err != nil {
		h.fail(c, "inventory summary", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventorySummary(summary))
}

func (h *AdminHandler) LowStock(c *gin.Context) {
	items, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		h.fail(c, "low stock", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLowStock(items))
}

// Restock godoc
// @Summary      Add units to a product
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Param        product_id  path      string  true  "Product ID"
// @Param        quantity    query     int     true  "Units to add"
// @Success      200         {object}  response.RestockResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/inventory/restock/{product_id} [post]
func (h *AdminHandler) Restock(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quantity", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.Restock(c.Request.Context(), c.Param("product_id"), quantity)
	if err != nil {
		h.fail(c, "restock", err)
		return
	}
	c.JSON(http.StatusOK, response.RestockResponse{
		Success:       true,
		Message:       fmt.Sprintf("Adicionadas %d unidades ao estoque", quantity),
		ProductID:     item.Product.ID,
		QuantityAdded: quantity,
		Stock:         response.FromInventoryItem(item),
	})
}

// SalesSummary godoc
// @Summary      Payments grouped by status
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Success      200  {object}  response.SalesSummaryResponse
// @Router       /admin/sales/summary [get]
func (h *AdminHandler) SalesSummary(c *gin.Context) {
	summary, err := h.usecase.SalesSummary(c.Request.Context())
	if err != nil {
		h.fail(c, "sales summary", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSalesSummary(summary))
}

func (h *AdminHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapAdminError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[admin][handler] "+op+" failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidRestockQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryNotConfigured), errors.Is(err, usecase.ErrPaymentStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORE_NOT_CONFIGURED", "Back-office storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
