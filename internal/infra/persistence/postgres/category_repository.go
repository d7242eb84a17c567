package postgres

import (
	"webshop/internal/domain/entity"
	"webshop/internal/domain/repository"
	"webshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewCategoryRepository is the constructor for the category repository.
// It binds the generic GORM repository to the category mapper pair.
func NewCategoryRepository(db *gorm.DB) repository.Repository[entity.Category] {
	return newGormRepository(db, fromCategoryDomain, toCategoryDomain)
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
