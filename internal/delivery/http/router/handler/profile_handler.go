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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// AddProfileRequest represents the request body for creating a profile.
type AddProfileRequest struct {
	FirstName   string    `json:"firstName" validate:"required"`
	LastName    string    `json:"lastName" validate:"required"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	UserID      uuid.UUID `json:"userId" validate:"required"`
}

// UpdateProfileRequest represents the request body for a partial
// profile update.
type UpdateProfileRequest struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	FirstName   *string   `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string   `json:"lastName" validate:"omitempty,min=1"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phoneNumber"`
}

// GetByID handles fetching a single profile.
func (h *ProfileHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	profile, err := h.profileUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetPage handles listing profiles with paging and search.
func (h *ProfileHandler) GetPage(c echo.Context) error {
	page, err := h.profileUC.GetPage(c.Request().Context(), bindPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Add handles profile creation.
func (h *ProfileHandler) Add(c echo.Context) error {
	var req AddProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ProfileAddInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		UserID:      req.UserID,
	}
	if err := h.profileUC.Add(c.Request().Context(), input, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Update handles a partial profile update.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.ProfilePatch{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.profileUC.Update(c.Request().Context(), patch, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete handles profile deletion.
func (h *ProfileHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if err := h.profileUC.Delete(c.Request().Context(), id, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
