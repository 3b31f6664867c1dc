package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sheetfab/internal/usecase"
	"sheetfab/pkg"
)

const reportDayLayout = "2006-01-02"

type ReportsHandler struct {
	usecase usecase.IReportsUseCase
}

func NewReportsHandler(uc usecase.IReportsUseCase) *ReportsHandler {
	return &ReportsHandler{usecase: uc}
}

type dailySummaryRequest struct {
	// Day in YYYY-MM-DD form; defaults to today when empty.
	Day string `json:"day"`
}

// RunDailySummary aggregates the day's quotations and collections and pushes
// the digest to the configured webhook.
func (h *ReportsHandler) RunDailySummary(c *gin.Context) {
	var payload dailySummaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	day := time.Now()
	if strings.TrimSpace(payload.Day) != "" {
		parsed, err := time.Parse(reportDayLayout, payload.Day)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REPORT_DAY", "Day must be in YYYY-MM-DD form", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		day = parsed
	}

	summary, err := h.usecase.DailySummary(c.Request.Context(), day)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetPaymentAging buckets unpaid completed quotations by age. as_of overrides
// the reference date, mainly for reproducible reports.
func (h *ReportsHandler) GetPaymentAging(c *gin.Context) {
	asOf := time.Now()
	if raw := strings.TrimSpace(c.Query("as_of")); raw != "" {
		parsed, err := time.Parse(reportDayLayout, raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REPORT_DAY", "as_of must be in YYYY-MM-DD form", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		asOf = parsed
	}

	report, err := h.usecase.PaymentAging(c.Request.Context(), asOf)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}
