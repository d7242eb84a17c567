package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order records a purchase of a product by a user. The referenced user
// and product must exist before an order is created; only the quantity
// is mutable afterwards.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
