package routes

import (
	"github.com/gin-gonic/gin"

	"sheetfab/internal/adapter/http/handlers"
)

const (
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, paymentHandler *handlers.PaymentHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:doc_id", quotationHandler.GetQuotation)
		quotations.PATCH("/:doc_id/approve", quotationHandler.ApproveQuotation)
		quotations.PATCH("/:doc_id/start", quotationHandler.StartProduction)
		quotations.PATCH("/:doc_id/complete", quotationHandler.CompleteProduction)
		quotations.PATCH("/:doc_id/lost", quotationHandler.MarkLost)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:doc_id", paymentHandler.RecordPayment)
		payments.GET("/:doc_id", paymentHandler.GetLatestPayment)
	}
}
