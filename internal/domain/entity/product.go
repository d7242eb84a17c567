package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item offered in the shop. Every product belongs to
// exactly one category; the name is unique across products.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       float64
	Description string
	CategoryID  uuid.UUID // Required reference to the owning Category.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
