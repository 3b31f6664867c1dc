package entities

import "time"

// Customer is a registered buyer referenced by quotations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// Quotations link by surrogate ID; Name lookups exist only as a compatibility
// shim for records migrated from the old name-keyed sheet.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
