package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteProduct links a user to a product they marked as a
// favorite. A user can favorite a product at most once.
type FavoriteProduct struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
