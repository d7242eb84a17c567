package usecase

import (
	"context"
	"time"

	"webshop/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductDTO is the transfer shape of a product.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductAddInput carries the fields needed to create a product.
type ProductAddInput struct {
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"categoryId"`
}

// ProductPatch is the partial-update shape for a product.
type ProductPatch struct {
	ID          uuid.UUID  `json:"id"`
	Name        *string    `json:"name"`
	Price       *float64   `json:"price"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}

// ProductUsecase defines the CRUD operations on products.
type ProductUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[ProductDTO], error)
	Add(ctx context.Context, input *ProductAddInput, requester *Requester) error
	Update(ctx context.Context, patch *ProductPatch, requester *Requester) error
	Delete(ctx context.Context, id uuid.UUID, requester *Requester) error
}
