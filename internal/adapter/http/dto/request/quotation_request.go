package request

import "strings"

// CreateQuotationRequest is the sales-facing payload for a new quotation.
// customer_id links a registered customer; customer_name is the legacy
// free-text path kept for sheet-migrated callers.
type CreateQuotationRequest struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Product      string  `json:"product" binding:"required"`
	ThicknessMM  float64 `json:"thickness_mm" binding:"required"`
	WidthMM      float64 `json:"width_mm" binding:"required"`
	LengthMM     float64 `json:"length_mm" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required"`
	ColorCount   int     `json:"color_count"`
	UnitRate     float64 `json:"unit_rate" binding:"required"`
	SalesAgent   string  `json:"sales_agent"`
	// OverrideSecret requests a price-floor bypass; it must match the
	// administrative secret.
	OverrideSecret string `json:"override_secret"`
}

func (r CreateQuotationRequest) HasCustomer() bool {
	return strings.TrimSpace(r.CustomerID) != "" || strings.TrimSpace(r.CustomerName) != ""
}

// ApproveQuotationRequest carries the approver credential for the gate.
// Either approver+secret (named manager) or secret alone (admin override).
type ApproveQuotationRequest struct {
	Approver string `json:"approver"`
	Secret   string `json:"secret" binding:"required"`
}

// CompleteProductionRequest reports the material weight fed into production.
type CompleteProductionRequest struct {
	InputWeightKG float64 `json:"input_weight_kg" binding:"required"`
}

// MarkLostRequest captures why an approved deal was lost.
type MarkLostRequest struct {
	ReasonCode string `json:"reason_code" binding:"required"`
	Note       string `json:"note"`
}

// RegisterCustomerRequest registers a new customer.
type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}
