package response

import (
	"time"

	"sheetfab/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// WhatsAppLinkResponse wraps a click-to-chat URL for a customer.
type WhatsAppLinkResponse struct {
	CustomerID string `json:"customer_id"`
	Link       string `json:"link"`
}
