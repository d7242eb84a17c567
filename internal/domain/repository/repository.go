// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"webshop/internal/domain/specification"

	"github.com/google/uuid"
)

// Sentinel errors surfaced by implementations when a mutation trips a
// storage constraint. Services translate them into conflict results so
// that a race past an existence pre-check still reports a conflict.
var (
	// ErrDuplicatedKey is returned when an insert or update violates a
	// unique constraint.
	ErrDuplicatedKey = errors.New("duplicated key violates a unique constraint")
	// ErrForeignKeyViolated is returned when an insert or update
	// references a row that does not exist.
	ErrForeignKeyViolated = errors.New("violates a foreign key constraint")
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Pagination carries the paging window and the optional free-text
// search term of a page request.
type Pagination struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize replaces out-of-range paging values with the defaults.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}

	return p
}

// Offset returns the row offset of the requested window.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one window of a filtered listing. TotalCount counts every
// row matching the predicate, ignoring the paging window.
type Page[E any] struct {
	Items      []E   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

// Repository is the generic persistence contract shared by every
// entity type. It is the only abstraction that touches storage; which
// rows an operation sees is decided entirely by the specification
// passed in.
type Repository[E any] interface {
	// Get fetches at most one entity matching the specification.
	// A miss is not an error: it returns (nil, nil).
	Get(ctx context.Context, spec specification.Specification) (*E, error)

	// Exists reports whether any entity matches the specification.
	Exists(ctx context.Context, spec specification.Specification) (bool, error)

	// GetPage applies the specification, then the paging window.
	GetPage(ctx context.Context, pagination Pagination, spec specification.Specification) (*Page[E], error)

	// Add inserts the entity and fills in its generated ID and
	// timestamps. Constraint violations map to the sentinel errors.
	Add(ctx context.Context, e *E) error

	// Update persists mutations made on a previously fetched entity.
	Update(ctx context.Context, e *E) error

	// Delete removes the entity with the given id. Deleting an id that
	// does not exist is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
