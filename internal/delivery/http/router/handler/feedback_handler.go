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

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
	Logger     *slog.Logger
}

// FeedbackHandler holds dependencies for feedback-related handlers.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
	logger     *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: params.FeedbackUC,
		logger:     params.Logger,
	}
}

// AddFeedbackRequest represents the request body for creating feedback.
type AddFeedbackRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateFeedbackRequest represents the request body for a partial
// feedback update.
type UpdateFeedbackRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Content *string   `json:"content"`
	Rating  *int      `json:"rating" validate:"omitempty,min=1,max=5"`
}

// GetByID handles fetching a single feedback entry.
func (h *FeedbackHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	feedback, err := h.feedbackUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback)
}

// GetPage handles listing feedback entries with paging and search.
func (h *FeedbackHandler) GetPage(c echo.Context) error {
	page, err := h.feedbackUC.GetPage(c.Request().Context(), bindPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Add handles feedback creation.
func (h *FeedbackHandler) Add(c echo.Context) error {
	var req AddFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.FeedbackAddInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Content:   req.Content,
		Rating:    req.Rating,
	}
	if err := h.feedbackUC.Add(c.Request().Context(), input, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Update handles a partial feedback update.
func (h *FeedbackHandler) Update(c echo.Context) error {
	var req UpdateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := &usecase.FeedbackPatch{ID: req.ID, Content: req.Content, Rating: req.Rating}
	if err := h.feedbackUC.Update(c.Request().Context(), patch, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete handles feedback deletion.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), id, middleware.RequesterFrom(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil)
}
