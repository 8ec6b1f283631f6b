package routes

import (
	"stuff3d_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/webhook", paymentHandler.Webhook)
		payments.GET("/:payment_id/status", paymentHandler.GetStatus)
	}

	rg.GET(PathProducts+"/:product_id/installments", paymentHandler.InstallmentOptions)
}
