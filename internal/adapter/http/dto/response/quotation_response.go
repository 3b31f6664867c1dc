package response

import (
	"time"

	"sheetfab/internal/domain/entities"
)

type QuotationResponse struct {
	DocID        string `json:"doc_id"`
	CustomerID   string `json:"customer_id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	Product      string `json:"product"`

	ThicknessMM float64 `json:"thickness_mm"`
	WidthMM     float64 `json:"width_mm"`
	LengthMM    float64 `json:"length_mm"`
	Quantity    int     `json:"quantity"`
	ColorCount  int     `json:"color_count,omitempty"`

	WeightKG     float64 `json:"weight_kg"`
	UnitRate     float64 `json:"unit_rate"`
	PrintingCost float64 `json:"printing_cost,omitempty"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalPrice   float64 `json:"total_price"`

	Status          string `json:"status"`
	SalesAgent      string `json:"sales_agent,omitempty"`
	ApprovedBy      string `json:"approved_by,omitempty"`
	OverrideApplied bool   `json:"override_applied,omitempty"`

	LostReason string `json:"lost_reason,omitempty"`
	LostNote   string `json:"lost_note,omitempty"`

	InputWeightKG float64 `json:"input_weight_kg,omitempty"`
	WastePercent  float64 `json:"waste_percent,omitempty"`

	PaymentStatus string `json:"payment_status"`
	PaidAt        string `json:"paid_at,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	resp := QuotationResponse{
		DocID:        q.DocID,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		Product:      q.Product,

		ThicknessMM: q.ThicknessMM,
		WidthMM:     q.WidthMM,
		LengthMM:    q.LengthMM,
		Quantity:    q.Quantity,
		ColorCount:  q.ColorCount,

		WeightKG:     q.WeightKG,
		UnitRate:     q.UnitRate,
		PrintingCost: q.PrintingCost,
		TaxAmount:    q.TaxAmount,
		TotalPrice:   q.TotalPrice,

		Status:          string(q.Status),
		SalesAgent:      q.SalesAgent,
		ApprovedBy:      q.ApprovedBy,
		OverrideApplied: q.OverrideApplied,

		LostReason: q.LostReason,
		LostNote:   q.LostNote,

		InputWeightKG: q.InputWeightKG,
		WastePercent:  q.WastePercent,

		PaymentStatus: string(q.PaymentStatus),

		CreatedAt: q.CreatedAt.Format(time.RFC3339),
		UpdatedAt: q.UpdatedAt.Format(time.RFC3339),
	}
	if q.PaidAt != nil {
		resp.PaidAt = q.PaidAt.Format(time.RFC3339)
	}
	return resp
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}
