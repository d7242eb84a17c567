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

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// AddProductRequest represents the request body for creating a product.
type AddProductRequest struct {
	Name        string    `json:"name" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
}

// UpdateProductRequest represents the request body for a partial
// product update.
type UpdateProductRequest struct {
	ID          uuid.UUID  `json:"id" validate:"required"`
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Price       *float64   `json:"price" validate:"omitempty,gt=0"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}

// GetByID handles fetching a single product.
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	product, err := h.productUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetPage handles listing products with paging and search.
func (h *ProductHandler) GetPage(c echo.Context) error {
	page, err := h.productUC.GetPage(c.Request().Context(), bindPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Add handles product creation.
func (h *ProductHandler) Add(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ProductAddInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := h.productUC.Add(c.Request().Context(), input, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Update handles a partial product update.
func (h *ProductHandler) Update(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.ProductPatch{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := h.productUC.Update(c.Request().Context(), patch, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete handles product deletion.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if err := h.productUC.Delete(c.Request().Context(), id, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
