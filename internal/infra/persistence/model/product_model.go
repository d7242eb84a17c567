package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. CategoryID references categories.id.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Price       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category      *CategoryModel         `gorm:"foreignKey:CategoryID"`
	Orders        []OrderModel           `gorm:"foreignKey:ProductID"`
	Feedbacks     []FeedbackModel        `gorm:"foreignKey:ProductID"`
	FavoriteLinks []FavoriteProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
