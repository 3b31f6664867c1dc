package routes

import (
	"github.com/gin-gonic/gin"

	"sheetfab/internal/adapter/http/handlers"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, reportsHandler *handlers.ReportsHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/aging", reportsHandler.GetPaymentAging)
		reports.POST("/daily-summary", reportsHandler.RunDailySummary)
	}
}
