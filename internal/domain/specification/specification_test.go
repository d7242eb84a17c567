package specification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_HasNoCriteria(t *testing.T) {
	assert.Empty(t, All().Criteria())
}

func TestByID(t *testing.T) {
	id := uuid.New()

	criteria := ByID(id).Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "id = ?", criteria[0].Expr)
	assert.Equal(t, []any{id}, criteria[0].Args)
}

func TestFeedbackByUserAndProduct(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	criteria := FeedbackByUserAndProduct(userID, productID).Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "user_id = ? AND product_id = ?", criteria[0].Expr)
	assert.Equal(t, []any{userID, productID}, criteria[0].Args)
}

func TestFavoriteByUserAndProduct(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	criteria := FavoriteByUserAndProduct(userID, productID).Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "user_id = ? AND product_id = ?", criteria[0].Expr)
	assert.Equal(t, []any{userID, productID}, criteria[0].Args)
}

func TestFavoritesByUser(t *testing.T) {
	userID := uuid.New()

	criteria := FavoritesByUser(userID).Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "user_id = ?", criteria[0].Expr)
	assert.Equal(t, []any{userID}, criteria[0].Args)
}

func TestTextSearch_BlankTermMatchesEverything(t *testing.T) {
	assert.Empty(t, CategorySearch("").Criteria())
	assert.Empty(t, CategorySearch("   \t ").Criteria())
}

func TestTextSearch_TrimsAndJoinsTokens(t *testing.T) {
	criteria := ProductSearch("  red   shirt ").Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "name ILIKE ?", criteria[0].Expr)
	assert.Equal(t, []any{"%red%shirt%"}, criteria[0].Args)
}

func TestProfileSearch_CoversBothNameColumns(t *testing.T) {
	criteria := ProfileSearch("ada").Criteria()
	require.Len(t, criteria, 1)
	assert.Equal(t, "first_name ILIKE ? OR last_name ILIKE ?", criteria[0].Expr)
	assert.Equal(t, []any{"%ada%", "%ada%"}, criteria[0].Args)
}

func TestOrderSearch_IgnoresTerm(t *testing.T) {
	assert.Empty(t, OrderSearch("anything").Criteria())
}
