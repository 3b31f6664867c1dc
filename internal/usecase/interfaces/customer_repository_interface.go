package interfaces

import (
	"context"

	"sheetfab/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	// GetByName is an exact-match compatibility shim for sheet-era records.
	GetByName(ctx context.Context, name string) (entities.Customer, error)
}
