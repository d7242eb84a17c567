package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedbacks' table. The composite unique
// index enforces at most one feedback per (user, product) pair.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedbacks_user_product"`
	Content   string    `gorm:"type:text"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
