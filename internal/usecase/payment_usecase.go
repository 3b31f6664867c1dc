package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sheetfab/internal/domain/entities"
	"sheetfab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrQuotationNotCompleted  = errors.New("quotation not completed")
	ErrQuotationAlreadyPaid   = errors.New("quotation already paid")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrPaymentGatewayRejected = errors.New("payment gateway rejected the request")
)

// IPaymentUseCase encapsulates "collect a payment against a completed
// quotation": process through the provider, persist the payment record, and
// flip the quotation's payment sub-state to Paid.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, docID string, providerPayload json.RawMessage) (entities.QuotationPayment, error)
	GetLatestByDocID(ctx context.Context, docID string) (entities.QuotationPayment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IQuotationPaymentRepository
	quotations interfaces.IQuotationRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IQuotationPaymentRepository, quotations interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quotations: quotations, gateway: gateway}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, docID string, providerPayload json.RawMessage) (entities.QuotationPayment, error) {
	log.Printf("[payment][usecase] record start doc_id=%q payload_len=%d", docID, len(providerPayload))
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return entities.QuotationPayment{}, ErrInvalidDocID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.QuotationPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.QuotationPayment{}, ErrGatewayNotConfigured
	}

	q, err := u.quotations.GetByID(ctx, docID)
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	if q.DocID == "" {
		return entities.QuotationPayment{}, ErrQuotationNotFound
	}
	if q.Status != entities.StatusCompleted {
		log.Printf("[payment][usecase] quotation not completed doc_id=%s status=%s", docID, q.Status)
		return entities.QuotationPayment{}, ErrQuotationNotCompleted
	}
	if q.PaymentStatus == entities.PaymentStatusPaid {
		return entities.QuotationPayment{}, ErrQuotationAlreadyPaid
	}

	amount := q.TotalPrice + q.TaxAmount
	providerPayload = enrichProviderPayload(providerPayload, docID, q.Product, amount)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed doc_id=%s err=%v", docID, err)
		return entities.QuotationPayment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayRejected, err)
	}
	log.Printf("[payment][usecase] gateway success doc_id=%s provider_payment_id=%s provider_status=%s", docID, providerPaymentID, providerStatus)

	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed doc_id=%s err=%v", docID, err)
	}

	now := time.Now().UTC()
	p := entities.QuotationPayment{
		ID:                 providerPaymentID,
		DocID:              docID,
		Amount:             amount,
		Date:               now,
		Status:             entities.PaymentStatusPaid,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed doc_id=%s payment_id=%s err=%v", docID, p.ID, err)
		return entities.QuotationPayment{}, err
	}

	if err := u.markQuotationPaid(ctx, docID, now); err != nil {
		log.Printf("[payment][usecase] mark paid failed doc_id=%s payment_id=%s err=%v", docID, created.ID, err)
		return entities.QuotationPayment{}, err
	}
	log.Printf("[payment][usecase] record success doc_id=%s payment_id=%s amount=%.2f", docID, created.ID, amount)
	return created, nil
}

func (u *PaymentUseCase) markQuotationPaid(ctx context.Context, docID string, paidAt time.Time) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		q, err := u.quotations.GetByID(ctx, docID)
		if err != nil {
			return err
		}
		if q.DocID == "" {
			return ErrQuotationNotFound
		}
		if q.PaymentStatus == entities.PaymentStatusPaid {
			return nil
		}

		q.PaymentStatus = entities.PaymentStatusPaid
		q.PaidAt = &paidAt
		q.UpdatedAt = time.Now().UTC()

		if _, err := u.quotations.Update(ctx, q); err != nil {
			if errors.Is(err, interfaces.ErrConflictRetry) {
				continue
			}
			return err
		}
		return nil
	}
	return interfaces.ErrConflictRetry
}

func (u *PaymentUseCase) GetLatestByDocID(ctx context.Context, docID string) (entities.QuotationPayment, error) {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return entities.QuotationPayment{}, ErrInvalidDocID
	}

	payments, err := u.repo.ListByDocID(ctx, docID)
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	if len(payments) == 0 {
		return entities.QuotationPayment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// enrichProviderPayload links the provider request to the quotation. The
// amount charged always comes from the stored quotation, never the caller.
func enrichProviderPayload(payload json.RawMessage, docID, product string, amount float64) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	if m == nil {
		m = map[string]any{}
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = docID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Quotation %s (%s)", docID, product)
	}
	m["transaction_amount"] = amount

	b, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return b
}
