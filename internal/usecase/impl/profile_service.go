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

type profileService struct {
	profiles repository.Repository[entity.Profile]
	users    repository.Repository[entity.User]
}

// NewProfileService creates the profile usecase service.
func NewProfileService(
	profiles repository.Repository[entity.Profile],
	users repository.Repository[entity.User],
) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		users:    users,
	}
}

// GetByID returns the profile with the given id.
func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.ProfileDTO, error) {
	profile, err := s.profiles.Get(ctx, specification.ByID(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}
	if profile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	return toProfileDTO(profile), nil
}

// GetPage returns one page of profiles, optionally filtered by a name
// search.
func (s *profileService) GetPage(ctx context.Context, pagination repository.Pagination) (*repository.Page[usecase.ProfileDTO], error) {
	page, err := s.profiles.GetPage(ctx, pagination, specification.ProfileSearch(pagination.Search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile page")
	}

	return mapPage(page, toProfileDTO), nil
}

// Add creates a new profile after verifying that the referenced user
// exists and does not already own one.
func (s *profileService) Add(ctx context.Context, input *usecase.ProfileAddInput, requester *usecase.Requester) error {
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

	taken, err := s.profiles.Exists(ctx, specification.ProfileByUser(input.UserID))
	if err != nil {
		return errors.Wrap(err, "failed to check profile")
	}
	if taken {
		return domainerrors.ErrProfileAlreadyExists
	}

	profile := &entity.Profile{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		UserID:      input.UserID,
	}
	if err := s.profiles.Add(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicatedKey) {
			return domainerrors.ErrProfileAlreadyExists
		}
		if errors.Is(err, repository.ErrForeignKeyViolated) {
			return domainerrors.ErrUserDoesntExist
		}

		return errors.Wrap(err, "failed to add profile")
	}

	return nil
}

// Update applies the non-nil patch fields to an existing profile.
// A missing target is a silent no-op.
func (s *profileService) Update(ctx context.Context, patch *usecase.ProfilePatch, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotUpdate
	}

	profile, err := s.profiles.Get(ctx, specification.ByID(patch.ID))
	if err != nil {
		return errors.Wrap(err, "failed to get profile")
	}
	if profile == nil {
		return nil
	}

	if patch.FirstName != nil {
		profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		profile.LastName = *patch.LastName
	}
	if patch.Address != nil {
		profile.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		profile.PhoneNumber = *patch.PhoneNumber
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// Delete removes the profile with the given id.
func (s *profileService) Delete(ctx context.Context, id uuid.UUID, requester *usecase.Requester) error {
	if requester != nil && !requester.IsAdmin() {
		return domainerrors.ErrCannotDelete
	}

	if err := s.profiles.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

// toProfileDTO projects a profile entity onto its transfer shape.
func toProfileDTO(e *entity.Profile) *usecase.ProfileDTO {
	return &usecase.ProfileDTO{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Address:     e.Address,
		PhoneNumber: e.PhoneNumber,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
