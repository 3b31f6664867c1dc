package routes

import (
	"github.com/gin-gonic/gin"

	"sheetfab/internal/adapter/http/handlers"
)

const PathCustomers = "/customers"

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.RegisterCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.GET("/:id/whatsapp-link", customerHandler.GetWhatsAppLink)
	}
}
