package entities

import (
	"encoding/json"
	"time"
)

// QuotationPayment is a payment collected against a completed quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (doc_id-index): doc_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for querying.
type QuotationPayment struct {
	ID     string        `json:"id"`
	DocID  string        `json:"doc_id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
