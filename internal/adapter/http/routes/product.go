package routes

import (
	"stuff3d_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathContact  = "/contact"
)

func addProductRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.List)
		products.GET("/categories", productHandler.Categories)
		products.GET("/:product_id", productHandler.GetByID)
		products.GET("/:product_id/whatsapp", productHandler.WhatsAppLink)
	}

	rg.POST(PathContact, productHandler.Contact)
}
