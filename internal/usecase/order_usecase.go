package usecase

import (
	"context"
	"time"

	"webshop/internal/domain/repository"

	"github.com/google/uuid"
)

// OrderDTO is the transfer shape of an order.
type OrderDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderAddInput carries the fields needed to create an order.
type OrderAddInput struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// OrderPatch is the partial-update shape for an order. Only the
// quantity of an existing order is mutable.
type OrderPatch struct {
	ID       uuid.UUID `json:"id"`
	Quantity *int      `json:"quantity"`
}

// OrderUsecase defines the CRUD operations on orders.
type OrderUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[OrderDTO], error)
	Add(ctx context.Context, input *OrderAddInput, requester *Requester) error
	Update(ctx context.Context, patch *OrderPatch, requester *Requester) error
	Delete(ctx context.Context, id uuid.UUID, requester *Requester) error
}
