package interfaces

import (
	"context"
	"errors"
	"time"

	"sheetfab/internal/domain/entities"
)

// ErrConflictRetry signals that a compare-and-swap update lost a race; the
// caller should re-read and retry a bounded number of times.
var ErrConflictRetry = errors.New("conflict retry")

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Contract notes:
//   - Get/List return zero-value entities (empty DocID) when nothing matches;
//     usecases map that to their not-found errors.
//   - Update replaces the record's mutable fields guarded by a version
//     compare-and-swap and returns ErrConflictRetry on a lost race. This
//     replaces the legacy "rewrite the whole sheet" discipline.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, docID string) (entities.Quotation, error)
	ListByStatus(ctx context.Context, status entities.QuotationStatus) ([]entities.Quotation, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quotation, error)
	ListCreatedOn(ctx context.Context, day time.Time) ([]entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
}
