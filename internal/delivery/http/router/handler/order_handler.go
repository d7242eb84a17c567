package handler

import (
	"log/slog"
	"net/http"

	"webshop/internal/delivery/http/middleware"
	"webshop/internal/delivery/http/response"
	domainerrors "webshop/internal/domain/errors"
	"webshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AddOrderRequest represents the request body for creating an order.
type AddOrderRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateOrderRequest represents the request body for a partial order
// update. Only the quantity is mutable.
type UpdateOrderRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Quantity *int      `json:"quantity" validate:"omitempty,min=1"`
}

// GetByID handles fetching a single order.
func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	order, err := h.orderUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetPage handles listing orders with paging.
func (h *OrderHandler) GetPage(c echo.Context) error {
	page, err := h.orderUC.GetPage(c.Request().Context(), bindPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Add handles order creation.
func (h *OrderHandler) Add(c echo.Context) error {
	var req AddOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.OrderAddInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	if err := h.orderUC.Add(c.Request().Context(), input, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Update handles a partial order update.
func (h *OrderHandler) Update(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.OrderPatch{ID: req.ID, Quantity: req.Quantity}
	if err := h.orderUC.Update(c.Request().Context(), patch, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete handles order deletion.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if err := h.orderUC.Delete(c.Request().Context(), id, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
