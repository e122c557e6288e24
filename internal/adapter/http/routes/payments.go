package routes

import (
	"mpesa_c2b/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.C2BPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/c2b", paymentHandler.CreateC2BPayment)
	}
}
