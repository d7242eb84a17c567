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

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// AddCategoryRequest represents the request body for creating a category.
type AddCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryRequest represents the request body for a partial
// category update. Absent fields keep their stored values.
type UpdateCategoryRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Name *string   `json:"name" validate:"omitempty,min=1"`
}

// GetByID handles fetching a single category.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	category, err := h.categoryUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category)
}

// GetPage handles listing categories with paging and search.
func (h *CategoryHandler) GetPage(c echo.Context) error {
	page, err := h.categoryUC.GetPage(c.Request().Context(), bindPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Add handles category creation.
func (h *CategoryHandler) Add(c echo.Context) error {
	var req AddCategoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CategoryAddInput{Name: req.Name}
	if err := h.categoryUC.Add(c.Request().Context(), input, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Update handles a partial category update.
func (h *CategoryHandler) Update(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.CategoryPatch{ID: req.ID, Name: req.Name}
	if err := h.categoryUC.Update(c.Request().Context(), patch, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete handles category deletion.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if err := h.categoryUC.Delete(c.Request().Context(), id, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
