package entities

import "time"

// QuotationStatus represents the lifecycle of a sales quotation.
//
// Domain notes:
//   - The workflow is monotonic: PendingApproval -> Approved -> InProgress -> Completed.
//   - Approved quotations may branch to Lost (terminal).
//   - Payment is an orthogonal sub-state, only meaningful once Completed.

type QuotationStatus string

const (
	StatusPendingApproval QuotationStatus = "Pending Approval"
	StatusApproved        QuotationStatus = "Approved"
	StatusInProgress      QuotationStatus = "In Progress"
	StatusCompleted       QuotationStatus = "Completed"
	StatusLost            QuotationStatus = "Lost"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Quotation is the priced offer document tracked from approval to payment.
//
// Storage model (DynamoDB):
//   - PK: doc_id
//   - GSI1 (status-index): status
//   - GSI2 (customer_id-index): customer_id
//
// Concurrency:
//   - Version is a monotonically increasing counter; every mutation is a
//     compare-and-swap on it, so concurrent writers never lose fields.
type Quotation struct {
	DocID        string `json:"doc_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Product      string `json:"product"`

	ThicknessMM float64 `json:"thickness_mm"`
	WidthMM     float64 `json:"width_mm"`
	LengthMM    float64 `json:"length_mm"`
	Quantity    int     `json:"quantity"`
	ColorCount  int     `json:"color_count"`

	WeightKG     float64 `json:"weight_kg"`
	UnitRate     float64 `json:"unit_rate"`
	PrintingCost float64 `json:"printing_cost"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalPrice   float64 `json:"total_price"`

	Status          QuotationStatus `json:"status"`
	SalesAgent      string          `json:"sales_agent"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	OverrideApplied bool            `json:"override_applied"`

	LostReason string `json:"lost_reason,omitempty"`
	LostNote   string `json:"lost_note,omitempty"`

	InputWeightKG float64 `json:"input_weight_kg,omitempty"`
	WastePercent  float64 `json:"waste_percent,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// IsTerminal reports whether no further lifecycle transition is permitted.
func (q Quotation) IsTerminal() bool {
	return q.Status == StatusLost
}
