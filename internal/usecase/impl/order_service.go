package impl

import (
	"context"

	"webshop/internal/domain/entity"
	domainerrors "webshop/internal/domain/errors"
	"webshop/internal/domain/repository"
	"webshop/internal/domain/specification"
	"webshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderService struct {
	orders   repository.Repository[entity.Order]
	users    repository.Repository[entity.User]
	products repository.Repository[entity.Product]
}

// NewOrderService creates the order usecase service.
func NewOrderService(
	orders repository.Repository[entity.Order],
	users repository.Repository[entity.User],
	products repository.Repository[entity.Product],
) usecase.OrderUsecase {
	return &orderService{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// GetByID returns the order with the given id.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.OrderDTO, error) {
	order, err := s.orders.Get(ctx, specification.ByID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	return toOrderDTO(order), nil
}

// GetPage returns one page of orders. Orders carry no searchable text,
// so the search term has no effect.
func (s *orderService) GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[usecase.OrderDTO], error) {
	page, err := s.orders.GetPage(ctx, pagination, specification.OrderSearch(pagination.Search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order page")
	}

	return mapPage(page, toOrderDTO), nil
}

// Add creates a new order after verifying that the referenced user and
// product both exist.
func (s *orderService) Add(ctx context.Context, input *usecase.OrderAddInput, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotAdd
	}

	if err := s.checkReferences(ctx, input.UserID, input.ProductID); err != nil {
		return err
	}

	order := &entity.Order{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := s.orders.Add(ctx, order); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolated) {
			// A referenced row vanished between the pre-check and the
			// insert; resolve which one so the conflict stays precise.
			if refErr := s.checkReferences(ctx, input.UserID, input.ProductID); refErr != nil {
				return refErr
			}

			return domainerrors.ErrUserDoesntExist
		}

		return errors.Wrap(err, "failed to add order")
	}

	return nil
}

// Update applies the non-nil patch fields to an existing order. Only
// the admin or the ordering user may change it. A missing target is a
// silent no-op.
func (s *orderService) Update(ctx context.Context, patch *usecase.OrderPatch, requester *usecase.Requester) error {
	order, err := s.orders.Get(ctx, specification.ByID(patch.ID))
	if err != nil {
		return errors.Wrap(err, "failed to get order")
	}
	if order == nil {
		return nil
	}

	if requester != nil && !requester.IsAdmin() && requester.ID != order.UserID {
		return domainerrors.ErrCannotUpdate
	}

	if patch.Quantity != nil {
		order.Quantity = *patch.Quantity
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

// Delete removes the order with the given id.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotDelete
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// checkReferences verifies the user and product an order points at.
func (s *orderService) checkReferences(ctx context.Context, userID, productID uuid.UUID) error {
	userExists, err := s.users.Exists(ctx, specification.ByID(userID))
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if !userExists {
		return domainerrors.ErrUserDoesntExist
	}

	productExists, err := s.products.Exists(ctx, specification.ByID(productID))
	if err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if !productExists {
		return domainerrors.ErrProductDoesntExist
	}

	return nil
}

// toOrderDTO projects an order entity onto its transfer shape.
func toOrderDTO(e *entity.Order) *usecase.OrderDTO {
	return &usecase.OrderDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
