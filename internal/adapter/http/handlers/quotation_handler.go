package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "sheetfab/internal/adapter/http/dto/request"
	response "sheetfab/internal/adapter/http/dto/response"
	"sheetfab/internal/domain/entities"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/usecase"
	"sheetfab/internal/usecase/interfaces"
	"sheetfab/pkg"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for the quotation lifecycle:
// create, read, approve, start, complete, mark lost.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}
	if !payload.HasCustomer() {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "A customer id or customer name is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	quotation, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuotationCommand{
		CustomerID:     payload.CustomerID,
		CustomerName:   payload.CustomerName,
		Product:        payload.Product,
		ThicknessMM:    payload.ThicknessMM,
		WidthMM:        payload.WidthMM,
		LengthMM:       payload.LengthMM,
		Quantity:       payload.Quantity,
		ColorCount:     payload.ColorCount,
		UnitRate:       payload.UnitRate,
		SalesAgent:     payload.SalesAgent,
		OverrideSecret: payload.OverrideSecret,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))
	quotation, err := h.usecase.GetByID(c.Request.Context(), docID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

// ListQuotations filters by status or, when customer_id is given, by customer.
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	var (
		quotations []entities.Quotation
		err        error
	)
	if customerID := strings.TrimSpace(c.Query("customer_id")); customerID != "" {
		quotations, err = h.usecase.ListByCustomer(c.Request.Context(), customerID)
	} else {
		quotations, err = h.usecase.ListByStatus(c.Request.Context(), strings.TrimSpace(c.Query("status")))
	}
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))

	var payload request.ApproveQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Approve(c.Request.Context(), docID, payload.Approver, payload.Secret)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) StartProduction(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))
	quotation, err := h.usecase.StartProduction(c.Request.Context(), docID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) CompleteProduction(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))

	var payload request.CompleteProductionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.CompleteProduction(c.Request.Context(), docID, payload.InputWeightKG)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) MarkLost(c *gin.Context) {
	docID := strings.TrimSpace(c.Param("doc_id"))

	var payload request.MarkLostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.MarkLost(c.Request.Context(), docID, payload.ReasonCode, payload.Note)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func mapQuotationError(err error) *pkg.AppError {
	var floorErr *pricing.PriceBelowFloorError
	switch {
	case errors.As(err, &floorErr):
		return pkg.NewDomainError("PRICE_BELOW_FLOOR", floorErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDocID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidUnitRate),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidLostReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidDimension):
		return pkg.NewDomainErrorSimple("INVALID_DIMENSIONS", "Dimensions and quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientInput):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_INPUT_WEIGHT", "Input weight cannot be below the quoted weight", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Approver credentials were rejected", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quotation status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrConflictRetry):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Record changed concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
