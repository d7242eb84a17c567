package postgres

import (
	"webshop/internal/domain/entity"
	"webshop/internal/domain/repository"
	"webshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewFeedbackRepository is the constructor for the feedback repository.
func NewFeedbackRepository(db *gorm.DB) repository.Repository[entity.Feedback] {
	return newGormRepository(db, fromFeedbackDomain, toFeedbackDomain)
}

// toFeedbackDomain converts a GORM FeedbackModel to a domain Feedback entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
