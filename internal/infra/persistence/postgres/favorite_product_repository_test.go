package postgres

import (
	"testing"
	"time"

	"webshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteProductMapping_RoundTrip(t *testing.T) {
	fav := &entity.FavoriteProduct{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now(),
	}

	data := fromFavoriteProductDomain(fav)
	require.NotNil(t, data)
	assert.Equal(t, fav.UserID, data.UserID)
	assert.Equal(t, fav.ProductID, data.ProductID)
	assert.Equal(t, "user_favorite_products", data.TableName())

	assert.Equal(t, fav, toFavoriteProductDomain(data))
}

func TestFavoriteProductMapping_Nil(t *testing.T) {
	assert.Nil(t, fromFavoriteProductDomain(nil))
	assert.Nil(t, toFavoriteProductDomain(nil))
}
