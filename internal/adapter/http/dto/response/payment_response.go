package response

import (
	"time"

	"sheetfab/internal/domain/entities"
)

type PaymentResponse struct {
	ID     string  `json:"id"`
	DocID  string  `json:"doc_id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
}

func FromPayment(p entities.QuotationPayment) PaymentResponse {
	return PaymentResponse{
		ID:     p.ID,
		DocID:  p.DocID,
		Amount: p.Amount,
		Date:   p.Date.Format(time.RFC3339),
		Status: string(p.Status),
	}
}

func FromPayments(ps []entities.QuotationPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
