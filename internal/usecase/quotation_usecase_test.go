package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"sheetfab/internal/domain/entities"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/usecase/interfaces"
	mock_interfaces "sheetfab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testPolicy() PricingPolicy {
	return PricingPolicy{
		Density:               pricing.DefaultDensity,
		Tiers:                 pricing.DefaultTierTable(),
		PrintSetupFeePerColor: 50,
		PrintRunRatePerColor:  0.02,
		TaxPercent:            6,
	}
}

type quotationMocks struct {
	repo      *mock_interfaces.MockIQuotationRepository
	customers *mock_interfaces.MockICustomerRepository
	verifier  *mock_interfaces.MockICredentialVerifier
	notifier  *mock_interfaces.MockINotifier
}

func newQuotationUseCaseForTest(t *testing.T) (*QuotationUseCase, quotationMocks) {
	ctrl := gomock.NewController(t)
	m := quotationMocks{
		repo:      mock_interfaces.NewMockIQuotationRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		verifier:  mock_interfaces.NewMockICredentialVerifier(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewQuotationUseCase(m.repo, m.customers, m.verifier, m.notifier, testPolicy(), 10, []string{"boss@factory.local"})
	return uc, m
}

func validCreateCommand() CreateQuotationCommand {
	return CreateQuotationCommand{
		CustomerName: "Ah Hock Trading",
		Product:      "0.5mm White",
		ThicknessMM:  0.5,
		WidthMM:      650,
		LengthMM:     900,
		Quantity:     1000,
		UnitRate:     12.60,
		SalesAgent:   "May",
	}
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("missing customer reference", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.CustomerName = "  "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("invalid unit rate", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		cmd := validCreateCommand()
		cmd.UnitRate = 0
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidUnitRate) {
			t.Fatalf("expected ErrInvalidUnitRate, got %v", err)
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)

		cmd := validCreateCommand()
		cmd.ThicknessMM = 0
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, pricing.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	t.Run("customer id not found", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		cmd := validCreateCommand()
		cmd.CustomerID = "c-1"
		cmd.CustomerName = ""
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("below floor blocks persistence", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)

		cmd := validCreateCommand()
		cmd.UnitRate = 10.00 // floor for >=100kg is 12.60

		_, err := uc.Create(context.Background(), cmd)
		var floorErr *pricing.PriceBelowFloorError
		if !errors.As(err, &floorErr) {
			t.Fatalf("expected PriceBelowFloorError, got %v", err)
		}
		if floorErr.MinimumRate != 12.60 {
			t.Fatalf("expected minimum 12.60, got %v", floorErr.MinimumRate)
		}
	})

	t.Run("override with wrong admin secret", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)
		m.verifier.EXPECT().VerifyAdmin("wrong").Return(false)

		cmd := validCreateCommand()
		cmd.UnitRate = 10.00
		cmd.OverrideSecret = "wrong"

		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("override passes floor and leaves audit marker", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)
		m.verifier.EXPECT().VerifyAdmin("boss-secret").Return(true)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if !q.OverrideApplied {
					t.Fatalf("expected override marker on record")
				}
				return q, nil
			},
		)

		cmd := validCreateCommand()
		cmd.UnitRate = 10.00
		cmd.OverrideSecret = "boss-secret"

		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create success computes weight and totals", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{ID: "c-9", Name: "Ah Hock Trading"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.DocID == "" {
					t.Fatalf("expected generated doc id")
				}
				if q.CustomerID != "c-9" {
					t.Fatalf("expected linked customer, got %q", q.CustomerID)
				}
				if math.Abs(q.WeightKG-266.175) > 1e-9 {
					t.Fatalf("expected weight 266.175, got %v", q.WeightKG)
				}
				if math.Abs(q.TotalPrice-3353.805) > 1e-9 {
					t.Fatalf("expected total 3353.805, got %v", q.TotalPrice)
				}
				if math.Abs(q.TaxAmount-3353.805*0.06) > 1e-9 {
					t.Fatalf("unexpected tax %v", q.TaxAmount)
				}
				if q.Status != entities.StatusPendingApproval {
					t.Fatalf("expected Pending Approval, got %s", q.Status)
				}
				if q.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("expected Unpaid, got %s", q.PaymentStatus)
				}
				if q.Version != 1 || q.CreatedAt.IsZero() {
					t.Fatalf("expected initialized version and timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), validCreateCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DocID == "" {
			t.Fatalf("expected doc id on result")
		}
	})

	t.Run("printing surcharge added to total", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				// 2 colors: 2*50 setup + 2*0.02*1000 run = 140.
				if math.Abs(q.PrintingCost-140) > 1e-9 {
					t.Fatalf("expected printing cost 140, got %v", q.PrintingCost)
				}
				if math.Abs(q.TotalPrice-(266.175*12.60+140)) > 1e-9 {
					t.Fatalf("unexpected total %v", q.TotalPrice)
				}
				return q, nil
			},
		)

		cmd := validCreateCommand()
		cmd.ColorCount = 2
		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("doc id collision retried with fresh id", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.customers.EXPECT().GetByName(gomock.Any(), "Ah Hock Trading").Return(entities.Customer{}, nil)

		ids := map[string]bool{}
		first := m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				ids[q.DocID] = true
				return entities.Quotation{}, interfaces.ErrConflictRetry
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if ids[q.DocID] {
					t.Fatalf("expected a fresh doc id after collision")
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), validCreateCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Approve(t *testing.T) {
	pendingDoc := func() entities.Quotation {
		return entities.Quotation{DocID: "QT-1", Status: entities.StatusPendingApproval, Version: 1}
	}

	t.Run("wrong credentials never touch the record", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().Verify("Iris", "wrong").Return(false)
		m.verifier.EXPECT().VerifyAdmin("wrong").Return(false)

		_, err := uc.Approve(context.Background(), "QT-1", "Iris", "wrong")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("manager approval records approver", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().Verify("Iris", "iris888").Return(true)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(pendingDoc(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Status != entities.StatusApproved || q.ApprovedBy != "Iris" {
					t.Fatalf("unexpected update: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.Approve(context.Background(), "QT-1", "Iris", "iris888")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("expected Approved, got %s", res.Status)
		}
	})

	t.Run("admin secret records override marker", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().VerifyAdmin("boss-secret").Return(true)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(pendingDoc(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ApprovedBy != "administrative override" {
					t.Fatalf("expected override approver, got %q", q.ApprovedBy)
				}
				return q, nil
			},
		)

		if _, err := uc.Approve(context.Background(), "QT-1", "", "boss-secret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approving a non-pending quotation fails without mutation", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().Verify("Iris", "iris888").Return(true)
		doc := pendingDoc()
		doc.Status = entities.StatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(doc, nil)

		_, err := uc.Approve(context.Background(), "QT-1", "Iris", "iris888")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().Verify("Iris", "iris888").Return(true)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-404").Return(entities.Quotation{}, nil)

		_, err := uc.Approve(context.Background(), "QT-404", "Iris", "iris888")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("version conflict is retried", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.verifier.EXPECT().Verify("Iris", "iris888").Return(true)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(pendingDoc(), nil).Times(2)
		conflict := m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, interfaces.ErrConflictRetry)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).After(conflict).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			},
		)

		if _, err := uc.Approve(context.Background(), "QT-1", "Iris", "iris888"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Lifecycle(t *testing.T) {
	t.Run("start production requires approved", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{DocID: "QT-1", Status: entities.StatusPendingApproval}, nil)

		_, err := uc.StartProduction(context.Background(), "QT-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("start production success", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{DocID: "QT-1", Status: entities.StatusApproved}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Status != entities.StatusInProgress {
					t.Fatalf("expected In Progress, got %s", q.Status)
				}
				return q, nil
			},
		)

		if _, err := uc.StartProduction(context.Background(), "QT-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mark lost requires reason", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		_, err := uc.MarkLost(context.Background(), "QT-1", "  ", "")
		if !errors.Is(err, ErrInvalidLostReason) {
			t.Fatalf("expected ErrInvalidLostReason, got %v", err)
		}
	})

	t.Run("mark lost only from approved", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{DocID: "QT-1", Status: entities.StatusInProgress}, nil)

		_, err := uc.MarkLost(context.Background(), "QT-1", "price", "competitor undercut")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("mark lost records reason and note", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{DocID: "QT-1", Status: entities.StatusApproved}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Status != entities.StatusLost || q.LostReason != "price" || q.LostNote != "competitor undercut" {
					t.Fatalf("unexpected update: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.MarkLost(context.Background(), "QT-1", "price", " competitor undercut "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_CompleteProduction(t *testing.T) {
	inProgress := func(target float64) entities.Quotation {
		return entities.Quotation{DocID: "QT-1", Product: "0.5mm White", Status: entities.StatusInProgress, WeightKG: target}
	}

	t.Run("requires in progress", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(entities.Quotation{DocID: "QT-1", Status: entities.StatusApproved}, nil)

		_, err := uc.CompleteProduction(context.Background(), "QT-1", 110)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("input below target blocks", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(inProgress(100), nil)

		_, err := uc.CompleteProduction(context.Background(), "QT-1", 95)
		if !errors.Is(err, ErrInsufficientInput) {
			t.Fatalf("expected ErrInsufficientInput, got %v", err)
		}
	})

	t.Run("waste below threshold completes silently", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(inProgress(100), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				// 110kg in for a 100kg target: 10kg waste, 9.09%.
				if q.Status != entities.StatusCompleted {
					t.Fatalf("expected Completed, got %s", q.Status)
				}
				if math.Abs(q.WastePercent-100.0/11.0) > 1e-9 {
					t.Fatalf("unexpected waste pct %v", q.WastePercent)
				}
				return q, nil
			},
		)

		if _, err := uc.CompleteProduction(context.Background(), "QT-1", 110); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("waste above threshold notifies but still completes", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(inProgress(100), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			},
		)
		m.notifier.EXPECT().Notify(gomock.Any(), []string{"boss@factory.local"}, gomock.Any(), gomock.Any()).Return(nil)

		// 120kg in for a 100kg target: 16.67% waste.
		res, err := uc.CompleteProduction(context.Background(), "QT-1", 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusCompleted {
			t.Fatalf("expected Completed, got %s", res.Status)
		}
	})

	t.Run("notification failure never fails the transition", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "QT-1").Return(inProgress(100), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			},
		)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.CompleteProduction(context.Background(), "QT-1", 120); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Listing(t *testing.T) {
	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if _, err := uc.ListByStatus(context.Background(), "Archived"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("lists by status", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusApproved).Return([]entities.Quotation{{DocID: "QT-1"}}, nil)
		got, err := uc.ListByStatus(context.Background(), "Approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].DocID != "QT-1" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("lists by customer", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().ListByCustomerID(gomock.Any(), "cus-1").Return([]entities.Quotation{{DocID: "QT-2"}}, nil)
		got, err := uc.ListByCustomer(context.Background(), " cus-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].DocID != "QT-2" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}
