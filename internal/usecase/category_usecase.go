package usecase

import (
	"context"
	"time"

	"webshop/internal/domain/repository"

	"github.com/google/uuid"
)

// CategoryDTO is the transfer shape of a category.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryAddInput carries the fields needed to create a category.
type CategoryAddInput struct {
	Name string `json:"name"`
}

// CategoryPatch is the partial-update shape: only non-nil fields
// overwrite the stored values.
type CategoryPatch struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name"`
}

// CategoryUsecase defines the CRUD operations on categories.
type CategoryUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[CategoryDTO], error)
	Add(ctx context.Context, input *CategoryAddInput, requester *Requester) error
	Update(ctx context.Context, patch *CategoryPatch, requester *Requester) error
	Delete(ctx context.Context, id uuid.UUID, requester *Requester) error
}
