// Package usecase defines the application-layer contracts: one usecase
// interface per entity, the transfer shapes they exchange with the
// delivery layer, and the identity of the caller.
package usecase

import (
	"webshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Requester identifies the authenticated caller of a usecase method.
// A nil *Requester means a trusted internal caller: permission checks
// are skipped entirely.
type Requester struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdmin reports whether the requester holds the elevated role.
func (r *Requester) IsAdmin() bool {
	return r != nil && r.Role == entity.RoleAdmin
}
