package postgres

import (
	"webshop/internal/domain/entity"
	"webshop/internal/domain/repository"
	"webshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewFavoriteProductRepository is the constructor for the favorite
// link repository.
func NewFavoriteProductRepository(db *gorm.DB) repository.Repository[entity.FavoriteProduct] {
	return newGormRepository(db, fromFavoriteProductDomain, toFavoriteProductDomain)
}

// toFavoriteProductDomain converts a GORM FavoriteProductModel to a
// domain FavoriteProduct entity.
func toFavoriteProductDomain(data *model.FavoriteProductModel) *entity.FavoriteProduct {
	if data == nil {
		return nil
	}

	return &entity.FavoriteProduct{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFavoriteProductDomain converts a domain FavoriteProduct entity
// to a GORM FavoriteProductModel.
func fromFavoriteProductDomain(data *entity.FavoriteProduct) *model.FavoriteProductModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteProductModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
