package impl

import (
	"context"

	"webshop/internal/domain/entity"
	domainerrors "webshop/internal/domain/errors"
	"webshop/internal/domain/repository"
	"webshop/internal/domain/specification"
	"webshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	products   repository.Repository[entity.Product]
	categories repository.Repository[entity.Category]
}

// NewProductService creates the product usecase service.
func NewProductService(
	products repository.Repository[entity.Product],
	categories repository.Repository[entity.Category],
) usecase.ProductUsecase {
	return &productService{
		products:   products,
		categories: categories,
	}
}

// GetByID returns the product with the given id.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.ProductDTO, error) {
	product, err := s.products.Get(ctx, specification.ByID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}
	if product == nil {
		return nil, domainerrors.ErrProductNotFound
	}

	return toProductDTO(product), nil
}

// GetPage returns one page of products, optionally filtered by a name
// search.
func (s *productService) GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[usecase.ProductDTO], error) {
	page, err := s.products.GetPage(ctx, pagination, specification.ProductSearch(pagination.Search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product page")
	}

	return mapPage(page, toProductDTO), nil
}

// Add creates a new product after verifying that the referenced
// category exists and that the name is not taken.
func (s *productService) Add(ctx context.Context, input *usecase.ProductAddInput, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotAdd
	}

	categoryExists, err := s.categories.Exists(ctx, specification.ByID(input.CategoryID))
	if err != nil {
		return errors.Wrap(err, "failed to check category")
	}
	if !categoryExists {
		return domainerrors.ErrCategoryDoesntExist
	}

	nameTaken, err := s.products.Exists(ctx, specification.ProductByName(input.Name))
	if err != nil {
		return errors.Wrap(err, "failed to check product name")
	}
	if nameTaken {
		return domainerrors.ErrProductAlreadyExists
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	}
	if err := s.products.Add(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrProductAlreadyExists
		}
		if errors.Is(err, repository.ErrForeignKeyViolated) {
			return domainerrors.ErrCategoryDoesntExist
		}

		return errors.Wrap(err, "failed to add product")
	}

	return nil
}

// Update applies the non-nil patch fields to an existing product.
// A missing target is a silent no-op.
func (s *productService) Update(ctx context.Context, patch *usecase.ProductPatch, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotUpdate
	}

	product, err := s.products.Get(ctx, specification.ByID(patch.ID))
	if err != nil {
		return errors.Wrap(err, "failed to get product")
	}
	if product == nil {
		return nil
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		categoryExists, err := s.categories.Exists(ctx, specification.ByID(*patch.CategoryID))
		if err != nil {
			return errors.Wrap(err, "failed to check category")
		}
		if !categoryExists {
			return domainerrors.ErrCategoryDoesntExist
		}
		product.CategoryID = *patch.CategoryID
	}

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrProductAlreadyExists
		}
		if errors.Is(err, repository.ErrForeignKeyViolated) {
			return domainerrors.ErrCategoryDoesntExist
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes the product with the given id.
func (s *productService) Delete(ctx context.Context, id uuid.UUID, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotDelete
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// toProductDTO projects a product entity onto its transfer shape.
func toProductDTO(e *entity.Product) *usecase.ProductDTO {
	return &usecase.ProductDTO{
		ID:          e.ID,
		Name:        e.Name,
		Price:       e.Price,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
