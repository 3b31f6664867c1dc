package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"sheetfab/internal/domain/entities"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/usecase/interfaces"
)

// DailySummary aggregates one business day of quotation and collection
// activity for the end-of-day management notification.
type DailySummary struct {
	Day               string             `json:"day"`
	QuotationsCreated int                `json:"quotations_created"`
	QuotedTotal       float64            `json:"quoted_total"`
	PaymentsCollected int                `json:"payments_collected"`
	CollectedTotal    float64            `json:"collected_total"`
	CommissionByAgent map[string]float64 `json:"commission_by_agent"`
}

// AgingBucket groups completed-but-unpaid quotations by days outstanding.
// Completed means invoice-issued, so aging starts at the completion time.
type AgingBucket struct {
	Label       string  `json:"label"`
	Count       int     `json:"count"`
	Outstanding float64 `json:"outstanding"`
}

type AgingReport struct {
	AsOf    time.Time     `json:"as_of"`
	Buckets []AgingBucket `json:"buckets"`
}

// IReportsUseCase exposes the management reporting operations.
type IReportsUseCase interface {
	DailySummary(ctx context.Context, day time.Time) (DailySummary, error)
	PaymentAging(ctx context.Context, asOf time.Time) (AgingReport, error)
}

type ReportsUseCase struct {
	quotations interfaces.IQuotationRepository
	payments   interfaces.IQuotationPaymentRepository
	notifier   interfaces.INotifier
	recipients []string
}

var _ IReportsUseCase = (*ReportsUseCase)(nil)

func NewReportsUseCase(
	quotations interfaces.IQuotationRepository,
	payments interfaces.IQuotationPaymentRepository,
	notifier interfaces.INotifier,
	recipients []string,
) *ReportsUseCase {
	return &ReportsUseCase{quotations: quotations, payments: payments, notifier: notifier, recipients: recipients}
}

// DailySummary computes the day's totals and sends them to management.
// Notification failure is logged and swallowed; the summary is still returned.
func (u *ReportsUseCase) DailySummary(ctx context.Context, day time.Time) (DailySummary, error) {
	created, err := u.quotations.ListCreatedOn(ctx, day)
	if err != nil {
		return DailySummary{}, err
	}
	collected, err := u.payments.ListCollectedOn(ctx, day)
	if err != nil {
		return DailySummary{}, err
	}

	s := DailySummary{
		Day:               day.UTC().Format("2006-01-02"),
		QuotationsCreated: len(created),
		PaymentsCollected: len(collected),
		CommissionByAgent: map[string]float64{},
	}
	for _, q := range created {
		s.QuotedTotal += q.TotalPrice
	}
	for _, p := range collected {
		s.CollectedTotal += p.Amount
		q, err := u.quotations.GetByID(ctx, p.DocID)
		if err != nil {
			return DailySummary{}, err
		}
		if q.DocID == "" || q.SalesAgent == "" {
			continue
		}
		s.CommissionByAgent[q.SalesAgent] += pricing.Commission(q.TotalPrice)
	}

	if u.notifier != nil {
		if err := u.notifier.Notify(ctx, u.recipients, "Daily summary "+s.Day, formatDailySummary(s)); err != nil {
			log.Printf("[reports][usecase] daily summary notify failed day=%s err=%v", s.Day, err)
		}
	}
	return s, nil
}

func formatDailySummary(s DailySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quotes created: %d (RM %.2f). Payments collected: %d (RM %.2f).",
		s.QuotationsCreated, s.QuotedTotal, s.PaymentsCollected, s.CollectedTotal)

	agents := make([]string, 0, len(s.CommissionByAgent))
	for a := range s.CommissionByAgent {
		agents = append(agents, a)
	}
	sort.Strings(agents)
	for _, a := range agents {
		fmt.Fprintf(&b, " Commission %s: RM %.2f.", a, s.CommissionByAgent[a])
	}
	return b.String()
}

var agingBoundsDays = []int{30, 60, 90}

// PaymentAging buckets completed, unpaid quotations by days outstanding
// (0-30, 31-60, 61-90, 90+).
func (u *ReportsUseCase) PaymentAging(ctx context.Context, asOf time.Time) (AgingReport, error) {
	completed, err := u.quotations.ListByStatus(ctx, entities.StatusCompleted)
	if err != nil {
		return AgingReport{}, err
	}

	buckets := []AgingBucket{
		{Label: "0-30"},
		{Label: "31-60"},
		{Label: "61-90"},
		{Label: "90+"},
	}
	for _, q := range completed {
		if q.PaymentStatus == entities.PaymentStatusPaid {
			continue
		}
		days := int(asOf.Sub(q.UpdatedAt).Hours() / 24)
		idx := len(agingBoundsDays)
		for i, bound := range agingBoundsDays {
			if days <= bound {
				idx = i
				break
			}
		}
		buckets[idx].Count++
		buckets[idx].Outstanding += q.TotalPrice + q.TaxAmount
	}

	return AgingReport{AsOf: asOf.UTC(), Buckets: buckets}, nil
}
