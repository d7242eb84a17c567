package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity anchor of the system. Profiles, orders and
// feedback entries all reference a User through its ID.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Name      string    // The user's display name.
	Email     string    // The user's contact email, unique across the system.
	Role      Role      // The role used for permission checks (admin or client).
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
