package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. The name is a natural key and is unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
