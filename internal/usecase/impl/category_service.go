// Package impl contains the concrete usecase services. Every service
// follows the same shape: resolve permissions, run the entity's
// pre-condition checks, then let the generic repository do the work.
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

type categoryService struct {
	categories repository.Repository[entity.Category]
}

// NewCategoryService creates the category usecase service.
func NewCategoryService(categories repository.Repository[entity.Category]) usecase.CategoryUsecase {
	return &categoryService{
		categories: categories,
	}
}

// GetByID returns the category with the given id.
func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.CategoryDTO, error) {
	category, err := s.categories.Get(ctx, specification.ByID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}
	if category == nil {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return toCategoryDTO(category), nil
}

// GetPage returns one page of categories, optionally filtered by a
// name search.
func (s *categoryService) GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[usecase.CategoryDTO], error) {
	page, err := s.categories.GetPage(ctx, pagination, specification.CategorySearch(pagination.Search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category page")
	}

	return mapPage(page, toCategoryDTO), nil
}

// Add creates a new category. The name is a natural key: a duplicate
// is reported as a conflict whether it is caught by the pre-check or
// by the storage constraint under a racing insert.
func (s *categoryService) Add(ctx context.Context, input *usecase.CategoryAddInput, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotAdd
	}

	exists, err := s.categories.Exists(ctx, specification.CategoryByName(input.Name))
	if err != nil {
		return errors.Wrap(err, "failed to check category name")
	}
	if exists {
		return domainerrors.ErrCategoryAlreadyExists
	}

	category := &entity.Category{
		Name: input.Name,
	}
	if err := s.categories.Add(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}

		return errors.Wrap(err, "failed to add category")
	}

	return nil
}

// Update applies the non-nil patch fields to an existing category.
// A missing target is a silent no-op.
func (s *categoryService) Update(ctx context.Context, patch *usecase.CategoryPatch, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotUpdate
	}

	category, err := s.categories.Get(ctx, specification.ByID(patch.ID))
	if err != nil {
		return errors.Wrap(err, "failed to get category")
	}
	if category == nil {
		return nil
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrCategoryAlreadyExists
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

// Delete removes the category with the given id. Deleting a missing
// id succeeds as a no-op.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotDelete
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// toCategoryDTO projects a category entity onto its transfer shape.
func toCategoryDTO(e *entity.Category) *usecase.CategoryDTO {
	return &usecase.CategoryDTO{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
