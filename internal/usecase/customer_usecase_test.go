package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sheetfab/internal/domain/entities"
	mock_interfaces "sheetfab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Register(t *testing.T) {
	t.Run("missing name or phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		if _, err := uc.Register(context.Background(), "   ", "012-3456789", ""); !errors.Is(err, ErrInvalidCustomerFields) {
			t.Fatalf("expected ErrInvalidCustomerFields, got %v", err)
		}
		if _, err := uc.Register(context.Background(), "Acme Plastics", "", ""); !errors.Is(err, ErrInvalidCustomerFields) {
			t.Fatalf("expected ErrInvalidCustomerFields, got %v", err)
		}
	})

	t.Run("assigns id and trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.Name != "Acme Plastics" || c.Phone != "012-3456789" {
					t.Fatalf("fields not trimmed: %+v", c)
				}
				return c, nil
			})
		uc := NewCustomerUseCase(repo)

		c, err := uc.Register(context.Background(), "  Acme Plastics ", " 012-3456789 ", "Shah Alam")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Address != "Shah Alam" {
			t.Fatalf("unexpected address %q", c.Address)
		}
	})
}

func TestCustomerUseCase_Lookup(t *testing.T) {
	stored := entities.Customer{
		ID:        "cus-1",
		Name:      "Acme Plastics",
		Phone:     "0123456789",
		CreatedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cus-missing").Return(entities.Customer{}, nil)
		uc := NewCustomerUseCase(repo)

		if _, err := uc.GetByID(context.Background(), "cus-missing"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("find by name resolves migrated records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByName(gomock.Any(), "Acme Plastics").Return(stored, nil)
		uc := NewCustomerUseCase(repo)

		c, err := uc.FindByName(context.Background(), " Acme Plastics ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cus-1" {
			t.Fatalf("unexpected customer %+v", c)
		}
	})
}

func TestCustomerUseCase_WhatsAppLink(t *testing.T) {
	t.Run("no phone on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1", Name: "Acme Plastics"}, nil)
		uc := NewCustomerUseCase(repo)

		if _, err := uc.WhatsAppLink(context.Background(), "cus-1", "hello"); !errors.Is(err, ErrCustomerHasNoPhone) {
			t.Fatalf("expected ErrCustomerHasNoPhone, got %v", err)
		}
	})

	t.Run("builds link with normalized number and message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1", Name: "Acme Plastics", Phone: "012-345 6789"}, nil)
		uc := NewCustomerUseCase(repo)

		link, err := uc.WhatsAppLink(context.Background(), "cus-1", "Quotation ready")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(link, "https://wa.me/60123456789") {
			t.Fatalf("unexpected link %q", link)
		}
		if !strings.Contains(link, "text=") {
			t.Fatalf("expected prefilled text in %q", link)
		}
	})
}
