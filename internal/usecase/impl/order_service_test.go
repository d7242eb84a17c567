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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service  usecase.OrderUsecase
	orders   *mockRepo.MockRepository[entity.Order]
	users    *mockRepo.MockRepository[entity.User]
	products *mockRepo.MockRepository[entity.Product]
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orders := new(mockRepo.MockRepository[entity.Order])
	users := new(mockRepo.MockRepository[entity.User])
	products := new(mockRepo.MockRepository[entity.Product])
	t.Cleanup(func() {
		orders.AssertExpectations(t)
		users.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	return orderServiceFixtures{
		service:  NewOrderService(orders, users, products),
		orders:   orders,
		users:    users,
		products: products,
	}
}

func TestOrderService_Add_AsAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.users.On("Exists", ctx, mock.Anything).Return(true, nil)
	fx.products.On("Exists", ctx, mock.Anything).Return(true, nil)
	fx.orders.On("Add", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.UserID == userID && o.ProductID == productID && o.Quantity == 3
	})).Return(nil)

	input := &usecase.OrderAddInput{UserID: userID, ProductID: productID, Quantity: 3}
	err := fx.service.Add(ctx, input, adminRequester())
	require.NoError(t, err)
}

func TestOrderService_Add_MissingUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.users.On("Exists", ctx, mock.Anything).Return(false, nil)

	input := &usecase.OrderAddInput{UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	err := fx.service.Add(ctx, input, adminRequester())
	assert.ErrorIs(t, err, domainerrors.ErrUserDoesntExist)
	fx.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOrderService_Add_MissingProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.users.On("Exists", ctx, mock.Anything).Return(true, nil)
	fx.products.On("Exists", ctx, mock.Anything).Return(false, nil)

	input := &usecase.OrderAddInput{UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	err := fx.service.Add(ctx, input, adminRequester())
	assert.ErrorIs(t, err, domainerrors.ErrProductDoesntExist)
}

func TestOrderService_Add_RacingDeletedProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	// Both references pass the pre-check, then the product vanishes
	// before the insert lands.
	fx.users.On("Exists", ctx, mock.Anything).Return(true, nil)
	fx.products.On("Exists", ctx, mock.Anything).Return(true, nil).Once()
	fx.products.On("Exists", ctx, mock.Anything).Return(false, nil).Once()
	fx.orders.On("Add", ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrForeignKeyViolated)

	input := &usecase.OrderAddInput{UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	err := fx.service.Add(ctx, input, adminRequester())
	assert.ErrorIs(t, err, domainerrors.ErrProductDoesntExist)
}

func TestOrderService_Update_ByOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := clientRequester()
	id := uuid.New()
	stored := &entity.Order{ID: id, UserID: owner.ID, ProductID: uuid.New(), Quantity: 1}
	newQuantity := 3

	fx.orders.On("Get", ctx, mock.Anything).Return(stored, nil)
	fx.orders.On("Update", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID == id && o.Quantity == newQuantity
	})).Return(nil)

	err := fx.service.Update(ctx, &usecase.OrderPatch{ID: id, Quantity: &newQuantity}, owner)
	require.NoError(t, err)
}

func TestOrderService_Update_ForbiddenForOtherClient(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Order{ID: id, UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	newQuantity := 3

	fx.orders.On("Get", ctx, mock.Anything).Return(stored, nil)

	err := fx.service.Update(ctx, &usecase.OrderPatch{ID: id, Quantity: &newQuantity}, clientRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCannotUpdate)
	fx.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_Update_MissingTargetIsNoop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orders.On("Get", ctx, mock.Anything).Return(nil, nil)

	err := fx.service.Update(ctx, &usecase.OrderPatch{ID: uuid.New()}, clientRequester())
	require.NoError(t, err)
}

func TestOrderService_Delete_ForbiddenForClient(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.Delete(context.Background(), uuid.New(), clientRequester())
	assert.ErrorIs(t, err, domainerrors.ErrCannotDelete)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orders.On("Get", ctx, mock.Anything).Return(nil, nil)

	dto, err := fx.service.GetByID(ctx, uuid.New())
	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
