package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/adapter/http/dto/request"
	"stuff3d_checkout/internal/adapter/http/dto/response"
	"stuff3d_checkout/internal/usecase"
	"stuff3d_checkout/pkg"
)

// ProductHandler serves the catalog and the WhatsApp shortcuts.
type ProductHandler struct {
	usecase usecase.IProductUseCase
	log     *zap.Logger
}

func NewProductHandler(uc usecase.IProductUseCase, log *zap.Logger) *ProductHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductHandler{usecase: uc, log: log}
}

// List godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   response.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.log.Error("[product][handler] list failed", zap.Error(err))
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		h.log.Error("[product][handler] categories failed", zap.Error(err))
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// WhatsAppLink answers GET /products/:product_id/whatsapp?quantity=&customer_name=.
func (h *ProductHandler) WhatsAppLink(c *gin.Context) {
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quantity", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		quantity = q
	}

	link, err := h.usecase.WhatsAppOrderLink(c.Request.Context(), c.Param("product_id"), quantity, c.Query("customer_name"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LinkResponse{URL: link})
}

func (h *ProductHandler) Contact(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Name, email and message are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	link, err := h.usecase.ContactLink(req.Name, req.Email, req.Message)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LinkResponse{URL: link})
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidContactMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWhatsAppNotConfigured):
		return pkg.NewDomainErrorSimple("WHATSAPP_NOT_CONFIGURED", "WhatsApp ordering is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
