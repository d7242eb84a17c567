package postgres

import (
	"webshop/internal/domain/entity"
	"webshop/internal/domain/repository"
	"webshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewOrderRepository is the constructor for the order repository.
func NewOrderRepository(db *gorm.DB) repository.Repository[entity.Order] {
	return newGormRepository(db, fromOrderDomain, toOrderDomain)
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
