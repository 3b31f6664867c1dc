package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sheetfab/internal/domain/docid"
	"sheetfab/internal/domain/entities"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/usecase/interfaces"
)

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrInvalidDocID      = errors.New("invalid doc id")
	ErrInvalidCustomer   = errors.New("invalid customer reference")
	ErrInvalidUnitRate   = errors.New("invalid unit rate")
	ErrInvalidStatus     = errors.New("invalid status filter")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInsufficientInput = errors.New("insufficient production input weight")
	ErrInvalidLostReason = errors.New("invalid lost reason")
)

// maxUpdateAttempts bounds the re-read/retry loop around version conflicts.
const maxUpdateAttempts = 3

// CreateQuotationCommand carries the sales inputs for a new quotation.
// Either CustomerID or CustomerName must be set; name lookup is the
// sheet-migration compatibility path.
type CreateQuotationCommand struct {
	CustomerID   string
	CustomerName string
	Product      string
	ThicknessMM  float64
	WidthMM      float64
	LengthMM     float64
	Quantity     int
	ColorCount   int
	UnitRate     float64
	SalesAgent   string
	// OverrideSecret, when set, requests a price-floor bypass and must match
	// the administrative secret.
	OverrideSecret string
}

// PricingPolicy groups the configurable business constants applied at
// quotation creation time.
type PricingPolicy struct {
	Density               float64
	Tiers                 pricing.TierTable
	PrintSetupFeePerColor float64
	PrintRunRatePerColor  float64
	TaxPercent            float64
}

// IQuotationUseCase exposes the quotation pricing and approval workflow:
// compute -> validate -> gate -> transition.
type IQuotationUseCase interface {
	Create(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error)
	GetByID(ctx context.Context, docID string) (entities.Quotation, error)
	ListByStatus(ctx context.Context, status string) ([]entities.Quotation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Quotation, error)
	Approve(ctx context.Context, docID, approver, secret string) (entities.Quotation, error)
	StartProduction(ctx context.Context, docID string) (entities.Quotation, error)
	CompleteProduction(ctx context.Context, docID string, inputWeightKG float64) (entities.Quotation, error)
	MarkLost(ctx context.Context, docID, reasonCode, note string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	customers interfaces.ICustomerRepository
	verifier  interfaces.ICredentialVerifier
	notifier  interfaces.INotifier

	policy            PricingPolicy
	floor             *pricing.FloorValidator
	wasteAlertPercent float64
	notifyRecipients  []string
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	customers interfaces.ICustomerRepository,
	verifier interfaces.ICredentialVerifier,
	notifier interfaces.INotifier,
	policy PricingPolicy,
	wasteAlertPercent float64,
	notifyRecipients []string,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:              repo,
		customers:         customers,
		verifier:          verifier,
		notifier:          notifier,
		policy:            policy,
		floor:             pricing.NewFloorValidator(policy.Tiers),
		wasteAlertPercent: wasteAlertPercent,
		notifyRecipients:  notifyRecipients,
	}
}

func (u *QuotationUseCase) Create(ctx context.Context, cmd CreateQuotationCommand) (entities.Quotation, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.Product = strings.TrimSpace(cmd.Product)
	cmd.SalesAgent = strings.TrimSpace(cmd.SalesAgent)

	if cmd.CustomerID == "" && cmd.CustomerName == "" {
		return entities.Quotation{}, ErrInvalidCustomer
	}
	if cmd.UnitRate <= 0 {
		return entities.Quotation{}, ErrInvalidUnitRate
	}

	customerID, customerName, err := u.resolveCustomer(ctx, cmd.CustomerID, cmd.CustomerName)
	if err != nil {
		return entities.Quotation{}, err
	}

	weight, err := pricing.Weight(pricing.Dimensions{
		ThicknessMM: cmd.ThicknessMM,
		WidthMM:     cmd.WidthMM,
		LengthMM:    cmd.LengthMM,
		Quantity:    cmd.Quantity,
	}, u.policy.Density)
	if err != nil {
		return entities.Quotation{}, err
	}

	override := false
	if cmd.OverrideSecret != "" {
		if !u.verifier.VerifyAdmin(cmd.OverrideSecret) {
			return entities.Quotation{}, ErrUnauthorized
		}
		override = true
	}
	if err := u.floor.Validate(weight, cmd.UnitRate, override); err != nil {
		return entities.Quotation{}, err
	}

	printingCost := pricing.PrintingSurcharge(cmd.ColorCount, u.policy.PrintSetupFeePerColor, u.policy.PrintRunRatePerColor, cmd.Quantity)
	totalPrice := weight*cmd.UnitRate + printingCost
	taxAmount := pricing.Tax(totalPrice, u.policy.TaxPercent)

	now := time.Now().UTC()
	q := entities.Quotation{
		CustomerID:      customerID,
		CustomerName:    customerName,
		Product:         cmd.Product,
		ThicknessMM:     cmd.ThicknessMM,
		WidthMM:         cmd.WidthMM,
		LengthMM:        cmd.LengthMM,
		Quantity:        cmd.Quantity,
		ColorCount:      cmd.ColorCount,
		WeightKG:        weight,
		UnitRate:        cmd.UnitRate,
		PrintingCost:    printingCost,
		TaxAmount:       taxAmount,
		TotalPrice:      totalPrice,
		Status:          entities.StatusPendingApproval,
		SalesAgent:      cmd.SalesAgent,
		OverrideApplied: override,
		PaymentStatus:   entities.PaymentStatusUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}

	// Regenerate the doc ID on the rare uniqueness collision.
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		q.DocID = docid.New(now)
		created, err := u.repo.Create(ctx, q)
		if errors.Is(err, interfaces.ErrConflictRetry) {
			continue
		}
		if err != nil {
			return entities.Quotation{}, err
		}
		return created, nil
	}
	return entities.Quotation{}, interfaces.ErrConflictRetry
}

func (u *QuotationUseCase) resolveCustomer(ctx context.Context, id, name string) (string, string, error) {
	if id != "" {
		c, err := u.customers.GetByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		if c.ID == "" {
			return "", "", ErrCustomerNotFound
		}
		return c.ID, c.Name, nil
	}

	// Name-only path: link to the registered customer when the exact name
	// matches, otherwise keep the free-text name as the sheet did.
	c, err := u.customers.GetByName(ctx, name)
	if err != nil {
		return "", "", err
	}
	if c.ID != "" {
		return c.ID, c.Name, nil
	}
	return "", name, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, docID string) (entities.Quotation, error) {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return entities.Quotation{}, ErrInvalidDocID
	}

	q, err := u.repo.GetByID(ctx, docID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.DocID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByStatus(ctx context.Context, status string) ([]entities.Quotation, error) {
	s := entities.QuotationStatus(strings.TrimSpace(status))
	switch s {
	case entities.StatusPendingApproval, entities.StatusApproved, entities.StatusInProgress,
		entities.StatusCompleted, entities.StatusLost:
	default:
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, s)
}

func (u *QuotationUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Quotation, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomer
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Approve transitions PendingApproval -> Approved after the credential gate.
// The approving manager (or "administrative override" when the shared admin
// secret was used) is recorded on the document.
func (u *QuotationUseCase) Approve(ctx context.Context, docID, approver, secret string) (entities.Quotation, error) {
	approver = strings.TrimSpace(approver)

	approvedBy := ""
	switch {
	case approver != "" && u.verifier.Verify(approver, secret):
		approvedBy = approver
	case u.verifier.VerifyAdmin(secret):
		approvedBy = "administrative override"
	default:
		return entities.Quotation{}, ErrUnauthorized
	}

	return u.transition(ctx, docID, func(q *entities.Quotation) error {
		if q.Status != entities.StatusPendingApproval {
			return ErrInvalidTransition
		}
		q.Status = entities.StatusApproved
		q.ApprovedBy = approvedBy
		return nil
	})
}

func (u *QuotationUseCase) StartProduction(ctx context.Context, docID string) (entities.Quotation, error) {
	return u.transition(ctx, docID, func(q *entities.Quotation) error {
		if q.Status != entities.StatusApproved {
			return ErrInvalidTransition
		}
		q.Status = entities.StatusInProgress
		return nil
	})
}

// CompleteProduction transitions InProgress -> Completed once the production
// input weight covers the quoted target. A waste percentage above the alert
// threshold notifies management but never blocks the transition.
func (u *QuotationUseCase) CompleteProduction(ctx context.Context, docID string, inputWeightKG float64) (entities.Quotation, error) {
	var wastePct float64

	updated, err := u.transition(ctx, docID, func(q *entities.Quotation) error {
		if q.Status != entities.StatusInProgress {
			return ErrInvalidTransition
		}
		if inputWeightKG <= 0 || inputWeightKG < q.WeightKG {
			return ErrInsufficientInput
		}
		waste := inputWeightKG - q.WeightKG
		wastePct = waste / inputWeightKG * 100
		q.Status = entities.StatusCompleted
		q.InputWeightKG = inputWeightKG
		q.WastePercent = wastePct
		return nil
	})
	if err != nil {
		return entities.Quotation{}, err
	}

	if wastePct > u.wasteAlertPercent && u.notifier != nil {
		subject := fmt.Sprintf("High waste on %s", updated.DocID)
		body := fmt.Sprintf("Job %s (%s) used %.2fkg input for a %.2fkg target: %.2f%% waste (threshold %.2f%%).",
			updated.DocID, updated.Product, updated.InputWeightKG, updated.WeightKG, wastePct, u.wasteAlertPercent)
		if err := u.notifier.Notify(ctx, u.notifyRecipients, subject, body); err != nil {
			log.Printf("[quotation][usecase] waste alert failed doc_id=%s err=%v", updated.DocID, err)
		}
	}
	return updated, nil
}

func (u *QuotationUseCase) MarkLost(ctx context.Context, docID, reasonCode, note string) (entities.Quotation, error) {
	reasonCode = strings.TrimSpace(reasonCode)
	if reasonCode == "" {
		return entities.Quotation{}, ErrInvalidLostReason
	}

	return u.transition(ctx, docID, func(q *entities.Quotation) error {
		if q.Status != entities.StatusApproved {
			return ErrInvalidTransition
		}
		q.Status = entities.StatusLost
		q.LostReason = reasonCode
		q.LostNote = strings.TrimSpace(note)
		return nil
	})
}

// transition re-reads the record, applies the guard and mutation, and writes
// back under a version compare-and-swap, retrying lost races a bounded number
// of times. Guards run before any write, so invalid retries are idempotent.
func (u *QuotationUseCase) transition(ctx context.Context, docID string, mutate func(q *entities.Quotation) error) (entities.Quotation, error) {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return entities.Quotation{}, ErrInvalidDocID
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		q, err := u.repo.GetByID(ctx, docID)
		if err != nil {
			return entities.Quotation{}, err
		}
		if q.DocID == "" {
			return entities.Quotation{}, ErrQuotationNotFound
		}

		if err := mutate(&q); err != nil {
			return entities.Quotation{}, err
		}
		q.UpdatedAt = time.Now().UTC()

		updated, err := u.repo.Update(ctx, q)
		if errors.Is(err, interfaces.ErrConflictRetry) {
			log.Printf("[quotation][usecase] version conflict doc_id=%s attempt=%d", docID, attempt+1)
			continue
		}
		if err != nil {
			return entities.Quotation{}, err
		}
		return updated, nil
	}
	return entities.Quotation{}, interfaces.ErrConflictRetry
}
