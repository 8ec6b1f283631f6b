package routes

import (
	"stuff3d_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckoutSessions = "/checkout/sessions"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	sessions := rg.Group(PathCheckoutSessions)
	{
		sessions.POST("", checkoutHandler.Open)
		sessions.GET("/:session_id", checkoutHandler.Get)
		sessions.DELETE("/:session_id", checkoutHandler.Close)
		sessions.PUT("/:session_id/customer", checkoutHandler.UpdateCustomer)
		sessions.PUT("/:session_id/quantity", checkoutHandler.SetQuantity)
		sessions.PUT("/:session_id/method", checkoutHandler.SelectMethod)
		sessions.PUT("/:session_id/installments", checkoutHandler.SelectInstallments)
		sessions.PUT("/:session_id/card", checkoutHandler.SetCard)
		sessions.POST("/:session_id/submit", checkoutHandler.Submit)
	}
}
