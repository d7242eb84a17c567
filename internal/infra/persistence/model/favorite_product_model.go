package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteProductModel mirrors the 'user_favorite_products' join
// table. The composite unique index enforces at most one favorite
// link per (user, product) pair.
type FavoriteProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorite_products_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorite_products_user_product"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteProductModel) TableName() string {
	return "user_favorite_products"
}
