package usecase

import (
	"context"
	"time"

	"webshop/internal/domain/repository"

	"github.com/google/uuid"
)

// ProfileDTO is the transfer shape of a profile.
type ProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileAddInput carries the fields needed to create a profile.
type ProfileAddInput struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	UserID      uuid.UUID `json:"userId"`
}

// ProfilePatch is the partial-update shape for a profile.
type ProfilePatch struct {
	ID          uuid.UUID `json:"id"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phoneNumber"`
}

// ProfileUsecase defines the CRUD operations on profiles.
type ProfileUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[ProfileDTO], error)
	Add(ctx context.Context, input *ProfileAddInput, requester *Requester) error
	Update(ctx context.Context, patch *ProfilePatch, requester *Requester) error
	Delete(ctx context.Context, id uuid.UUID, requester *Requester) error
}
