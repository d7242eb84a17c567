package impl

import (
	"context"
	"testing"

	"webshop/internal/domain/entity"
	domainerrors "webshop/internal/domain/errors"
	"webshop/internal/domain/repository"
	mockRepo "webshop/internal/mocks/repository"
	"webshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service    usecase.CategoryUsecase
	categories *mockRepo.MockRepository[entity.Category]
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	t.Helper()

	categories := new(mockRepo.MockRepository[entity.Category])
	t.Cleanup(func() { categories.AssertExpectations(t) })

	return categoryServiceFixtures{
		service:    NewCategoryService(categories),
		categories: categories,
	}
}

func adminRequester() *usecase.Requester {
	return &usecase.Requester{ID: uuid.New(), Role: entity.RoleAdmin}
}

func clientRequester() *usecase.Requester {
	return &usecase.Requester{ID: uuid.New(), Role: entity.RoleClient}
}

func TestCategoryService_GetByID_Found(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Category{ID: id, Name: "Books"}

	fx.categories.On("Get", ctx, mock.Anything).Return(stored, nil)

	dto, err := fx.service.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, dto.ID)
	assert.Equal(t, "Books", dto.Name)
}

func TestCategoryService_GetByID_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categories.On("Get", ctx, mock.Anything).Return(nil, nil)

	dto, err := fx.service.GetByID(ctx, uuid.New())
	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Add_AsAdmin(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categories.On("Exists", ctx, mock.Anything).Return(false, nil)
	fx.categories.On("Add", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	err := fx.service.Add(ctx, &usecase.CategoryAddInput{Name: "Books"}, adminRequester())
	require.NoError(t, err)
}

func TestCategoryService_Add_NilRequesterSkipsChecks(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categories.On("Exists", ctx, mock.Anything).Return(false, nil)
	fx.categories.On("Add", ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	err := fx.service.Add(ctx, &usecase.CategoryAddInput{Name: "Books"}, nil)
	require.NoError(t, err)
}

func TestCategoryService_Add_ForbiddenForClient(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.Add(context.Background(), &usecase.CategoryAddInput{Name: "Books"}, clientRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCannotAdd)
	fx.categories.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCategoryService_Add_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categories.On("Exists", ctx, mock.Anything).Return(true, nil)

	err := fx.service.Add(ctx, &usecase.CategoryAddInput{Name: "Books"}, adminRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	fx.categories.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCategoryService_Add_RacingDuplicate(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	// The pre-check misses the concurrent insert; the storage
	// constraint reports the same conflict.
	fx.categories.On("Exists", ctx, mock.Anything).Return(false, nil)
	fx.categories.On("Add", ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrDuplicatedKey)

	err := fx.service.Add(ctx, &usecase.CategoryAddInput{Name: "Books"}, adminRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_Update_AppliesPatch(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Category{ID: id, Name: "Books"}
	newName := "Textbooks"

	fx.categories.On("Get", ctx, mock.Anything).Return(stored, nil)
	fx.categories.On("Update", ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.ID == id && c.Name == newName
	})).Return(nil)

	err := fx.service.Update(ctx, &usecase.CategoryPatch{ID: id, Name: &newName}, adminRequester())
	require.NoError(t, err)
}

func TestCategoryService_Update_MissingTargetIsNoop(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categories.On("Get", ctx, mock.Anything).Return(nil, nil)

	err := fx.service.Update(ctx, &usecase.CategoryPatch{ID: uuid.New()}, adminRequester())
	require.NoError(t, err)
	fx.categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_ForbiddenForClient(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.Update(context.Background(), &usecase.CategoryPatch{ID: uuid.New()}, clientRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCannotUpdate)
}

func TestCategoryService_Delete_MissingIDSucceeds(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.categories.On("Delete", ctx, id).Return(nil)

	err := fx.service.Delete(ctx, id, adminRequester())
	require.NoError(t, err)
}

func TestCategoryService_Delete_ForbiddenForClient(t *testing.T) {
	fx := createTestCategoryService(t)

	err := fx.service.Delete(context.Background(), uuid.New(), clientRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCannotDelete)
	fx.categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_GetPage_EmptyResult(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	pagination := repository.Pagination{Page: 1, PageSize: 10, Search: "nothing matches this"}

	fx.categories.On("GetPage", ctx, pagination, mock.Anything).
		Return(&repository.Page[entity.Category]{Items: []entity.Category{}, Page: 1, PageSize: 10}, nil)

	page, err := fx.service.GetPage(ctx, pagination)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
}

func TestCategoryService_GetPage_ProjectsItems(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	pagination := repository.Pagination{Page: 1, PageSize: 10}
	stored := []entity.Category{
		{ID: uuid.New(), Name: "Books"},
		{ID: uuid.New(), Name: "Games"},
	}

	fx.categories.On("GetPage", ctx, pagination, mock.Anything).
		Return(&repository.Page[entity.Category]{Items: stored, TotalCount: 2, Page: 1, PageSize: 10}, nil)

	page, err := fx.service.GetPage(ctx, pagination)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Books", page.Items[0].Name)
	assert.Equal(t, "Games", page.Items[1].Name)
	assert.EqualValues(t, 2, page.TotalCount)
}
