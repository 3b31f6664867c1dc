package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"sheetfab/internal/adapter/http/handlers/mocks"
	"sheetfab/internal/domain/entities"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/usecase"
)

func sampleQuotation() entities.Quotation {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	return entities.Quotation{
		DocID:        "QT-260830-100000-1A2B3C",
		CustomerID:   "cus-1",
		CustomerName: "Acme Plastics",
		Product:      "PP sheet",
		ThicknessMM:  1.5,
		WidthMM:      650,
		LengthMM:     1000,
		Quantity:     300,
		WeightKG:     266.175,
		UnitRate:     12.6,
		TotalPrice:   3353.805,
		Status:        entities.StatusPendingApproval,
		PaymentStatus: entities.PaymentStatusUnpaid,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIQuotationUseCase) *gin.Engine {
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newRouter(uc)

		body := `{"product":"PP sheet","thickness_mm":1.5,"width_mm":650,"length_mm":1000,"quantity":300,"unit_rate":12.6}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("price below floor maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, &pricing.PriceBelowFloorError{MinimumRate: 12.6})
		r := newRouter(uc)

		body := `{"customer_name":"Acme Plastics","product":"PP sheet","thickness_mm":1.5,"width_mm":650,"length_mm":1000,"quantity":300,"unit_rate":11.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateQuotationCommand) (entities.Quotation, error) {
				if cmd.CustomerName != "Acme Plastics" || cmd.UnitRate != 12.6 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return sampleQuotation(), nil
			})
		r := newRouter(uc)

		body := `{"customer_name":"Acme Plastics","product":"PP sheet","thickness_mm":1.5,"width_mm":650,"length_mm":1000,"quantity":300,"unit_rate":12.6}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["doc_id"] != "QT-260830-100000-1A2B3C" {
			t.Fatalf("unexpected doc_id %v", got["doc_id"])
		}
		if got["status"] != string(entities.StatusPendingApproval) {
			t.Fatalf("unexpected status %v", got["status"])
		}
	})
}

func TestQuotationHandler_ApproveQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIQuotationUseCase) *gin.Engine {
		h := NewQuotationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/quotations/:doc_id/approve", h.ApproveQuotation)
		return r
	}

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Approve(gomock.Any(), "QT-1", "Iris", "wrong").Return(entities.Quotation{}, usecase.ErrUnauthorized)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-1/approve", bytes.NewBufferString(`{"approver":"Iris","secret":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong state maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().Approve(gomock.Any(), "QT-1", "Iris", "iris888").Return(entities.Quotation{}, usecase.ErrInvalidTransition)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-1/approve", bytes.NewBufferString(`{"approver":"Iris","secret":"iris888"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		approved := sampleQuotation()
		approved.Status = entities.StatusApproved
		approved.ApprovedBy = "Iris"
		uc.EXPECT().Approve(gomock.Any(), approved.DocID, "Iris", "iris888").Return(approved, nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/"+approved.DocID+"/approve", bytes.NewBufferString(`{"approver":"Iris","secret":"iris888"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["approved_by"] != "Iris" {
			t.Fatalf("unexpected approved_by %v", got["approved_by"])
		}
	})
}

func TestQuotationHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "QT-missing").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations/:doc_id", h.GetQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/QT-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().ListByStatus(gomock.Any(), "Pending Approval").Return([]entities.Quotation{sampleQuotation()}, nil)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?status=Pending+Approval", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 quotation, got %d", len(got))
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().ListByCustomer(gomock.Any(), "cus-1").Return([]entities.Quotation{sampleQuotation()}, nil)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?customer_id=cus-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{}, errors.New("dynamodb down"))

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.GET("/v1/quotations/:doc_id", h.GetQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/QT-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_ProductionLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("complete with insufficient input maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		uc.EXPECT().CompleteProduction(gomock.Any(), "QT-1", 100.0).Return(entities.Quotation{}, usecase.ErrInsufficientInput)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/quotations/:doc_id/complete", h.CompleteProduction)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-1/complete", bytes.NewBufferString(`{"input_weight_kg":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("mark lost requires a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/quotations/:doc_id/lost", h.MarkLost)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-1/lost", bytes.NewBufferString(`{"note":"went elsewhere"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("start production success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		started := sampleQuotation()
		started.Status = entities.StatusInProgress
		uc.EXPECT().StartProduction(gomock.Any(), started.DocID).Return(started, nil)

		h := NewQuotationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/quotations/:doc_id/start", h.StartProduction)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/"+started.DocID+"/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
