package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sheetfab/internal/domain/entities"
	"sheetfab/internal/usecase/interfaces"
	"sheetfab/pkg"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidCustomerFields = errors.New("invalid customer fields")
	ErrCustomerHasNoPhone    = errors.New("customer has no phone number")
)

// ICustomerUseCase exposes customer registration and lookup.
type ICustomerUseCase interface {
	Register(ctx context.Context, name, phone, address string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	FindByName(ctx context.Context, name string) (entities.Customer, error)
	WhatsAppLink(ctx context.Context, id, message string) (string, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Register(ctx context.Context, name, phone, address string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)
	if name == "" || phone == "" {
		return entities.Customer{}, ErrInvalidCustomerFields
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// FindByName resolves a customer by exact name match. Kept only for records
// migrated from the name-keyed sheet; new callers should link by ID.
func (u *CustomerUseCase) FindByName(ctx context.Context, name string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrInvalidCustomerFields
	}

	c, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// WhatsAppLink builds an outbound chat deep link for the customer's phone.
func (u *CustomerUseCase) WhatsAppLink(ctx context.Context, id, message string) (string, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	link := pkg.BuildWhatsAppLink(c.Phone, message)
	if link == "" {
		return "", ErrCustomerHasNoPhone
	}
	return link, nil
}
