package postgres

import (
	"webshop/internal/domain/entity"
	"webshop/internal/domain/repository"
	"webshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewProfileRepository is the constructor for the profile repository.
func NewProfileRepository(db *gorm.DB) repository.Repository[entity.Profile] {
	return newGormRepository(db, fromProfileDomain, toProfileDomain)
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Address:     data.Address,
		PhoneNumber: data.PhoneNumber,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
