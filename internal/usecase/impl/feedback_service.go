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

type feedbackService struct {
	feedbacks repository.Repository[entity.Feedback]
	users     repository.Repository[entity.User]
	products  repository.Repository[entity.Product]
}

// NewFeedbackService creates the feedback usecase service.
func NewFeedbackService(
	feedbacks repository.Repository[entity.Feedback],
	users repository.Repository[entity.User],
	products repository.Repository[entity.Product],
) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbacks: feedbacks,
		users:     users,
		products:  products,
	}
}

// GetByID returns the feedback entry with the given id.
func (s *feedbackService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.FeedbackDTO, error) {
	feedback, err := s.feedbacks.Get(ctx, specification.ByID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get feedback")
	}
	if feedback == nil {
		return nil, domainerrors.ErrFeedbackNotFound
	}

	return toFeedbackDTO(feedback), nil
}

// GetPage returns one page of feedback entries, optionally filtered by
// a content search.
func (s *feedbackService) GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[usecase.FeedbackDTO], error) {
	page, err := s.feedbacks.GetPage(ctx, pagination, specification.FeedbackSearch(pagination.Search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get feedback page")
	}

	return mapPage(page, toFeedbackDTO), nil
}

// Add creates a new feedback entry after verifying that the referenced
// user and product exist and that the pair has not already left one.
func (s *feedbackService) Add(ctx context.Context, input *usecase.FeedbackAddInput, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotAdd
	}

	userExists, err := s.users.Exists(ctx, specification.ByID(input.UserID))
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if !userExists {
		return domainerrors.ErrUserDoesntExist
	}

	productExists, err := s.products.Exists(ctx, specification.ByID(input.ProductID))
	if err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if !productExists {
		return domainerrors.ErrProductDoesntExist
	}

	taken, err := s.feedbacks.Exists(ctx, specification.FeedbackByUserAndProduct(input.UserID, input.ProductID))
	if err != nil {
		return errors.Wrap(err, "failed to check feedback")
	}
	if taken {
		return domainerrors.ErrFeedbackAlreadyExists
	}

	feedback := &entity.Feedback{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Content:   input.Content,
		Rating:    input.Rating,
	}
	if err := s.feedbacks.Add(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrFeedbackAlreadyExists
		}
		if errors.Is(err, repository.ErrForeignKeyViolated) {
			return domainerrors.ErrUserDoesntExist
		}

		return errors.Wrap(err, "failed to add feedback")
	}

	return nil
}

// Update applies the non-nil patch fields to an existing feedback
// entry. Only the admin or the author may change it. A missing target
// is a silent no-op.
func (s *feedbackService) Update(ctx context.Context, patch *usecase.FeedbackPatch, requester *usecase.Requester) error {
	feedback, err := s.feedbacks.Get(ctx, specification.ByID(patch.ID))
	if err != nil {
		return errors.Wrap(err, "failed to get feedback")
	}
	if feedback == nil {
		return nil
	}

	if requester != nil && !requester.IsAdmin() && requester.ID != feedback.UserID {
		return domainerrors.ErrCannotUpdate
	}

	if patch.Content != nil {
		feedback.Content = *patch.Content
	}
	if patch.Rating != nil {
		feedback.Rating = *patch.Rating
	}

	if err := s.feedbacks.Update(ctx, feedback); err != nil {
		return errors.Wrap(err, "failed to update feedback")
	}

	return nil
}

// Delete removes the feedback entry with the given id.
func (s *feedbackService) Delete(ctx context.Context, id uuid.UUID, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotDelete
	}

	if err := s.feedbacks.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete feedback")
	}

	return nil
}

// toFeedbackDTO projects a feedback entity onto its transfer shape.
func toFeedbackDTO(e *entity.Feedback) *usecase.FeedbackDTO {
	return &usecase.FeedbackDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		ProductID: e.ProductID,
		Content:   e.Content,
		Rating:    e.Rating,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
