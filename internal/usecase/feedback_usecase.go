package usecase

import (
	"context"
	"time"

	"webshop/internal/domain/repository"

	"github.com/google/uuid"
)

// FeedbackDTO is the transfer shape of a feedback entry.
type FeedbackDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeedbackAddInput carries the fields needed to create a feedback entry.
type FeedbackAddInput struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
}

// FeedbackPatch is the partial-update shape for a feedback entry.
type FeedbackPatch struct {
	ID      uuid.UUID `json:"id"`
	Content *string   `json:"content"`
	Rating  *int      `json:"rating"`
}

// FeedbackUsecase defines the CRUD operations on feedback entries.
type FeedbackUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FeedbackDTO, error)
	GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[FeedbackDTO], error)
	Add(ctx context.Context, input *FeedbackAddInput, requester *Requester) error
	Update(ctx context.Context, patch *FeedbackPatch, requester *Requester) error
	Delete(ctx context.Context, id uuid.UUID, requester *Requester) error
}
