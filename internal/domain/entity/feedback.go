package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a rating with free-text content a user leaves on a
// product. A user can leave at most one feedback per product.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Content   string
	Rating    int // Integer rating, 1 to 5.
	CreatedAt time.Time
	UpdatedAt time.Time
}
