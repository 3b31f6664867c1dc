package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "sheetfab/internal/adapter/http/dto/response"
	"sheetfab/internal/usecase"
	"sheetfab/internal/usecase/interfaces"
	"sheetfab/pkg"
)

// PaymentHandler records provider payments against completed quotations and
// exposes the latest payment per document.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment forwards the raw provider payload to the gateway. The body is
// kept opaque here so provider-specific fields survive untouched.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.usecase.RecordPayment(c.Request.Context(), docID, body)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))

	payment, err := h.usecase.GetLatestByDocID(c.Request.Context(), docID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "No payment recorded for this quotation", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotCompleted):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_COMPLETED", "Payments are accepted only for completed quotations", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_PAID", "Quotation is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("GATEWAY_REJECTED", "Payment gateway rejected the request", http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrConflictRetry):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Record changed concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
