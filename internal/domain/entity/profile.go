package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the personal details of a user. Each user owns at most
// one profile, so UserID is unique.
type Profile struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
