package interfaces

import (
	"context"
	"time"

	"sheetfab/internal/domain/entities"
)

// IQuotationPaymentRepository abstracts DynamoDB persistence for QuotationPayment.
type IQuotationPaymentRepository interface {
	Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotationPayment, error)
	ListByDocID(ctx context.Context, docID string) ([]entities.QuotationPayment, error)
	ListCollectedOn(ctx context.Context, day time.Time) ([]entities.QuotationPayment, error)
}
