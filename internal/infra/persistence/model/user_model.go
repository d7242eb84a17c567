package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Role      string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile   *ProfileModel          `gorm:"foreignKey:UserID"`
	Orders    []OrderModel           `gorm:"foreignKey:UserID"`
	Feedbacks []FeedbackModel        `gorm:"foreignKey:UserID"`
	Favorites []FavoriteProductModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
