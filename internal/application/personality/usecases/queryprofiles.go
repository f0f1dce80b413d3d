package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type GetProfileUseCase struct {
	profileRepo personality.Repository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo personality.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: profileRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, entityType, entityID string) (*personality.Profile, error) {
	subject, err := personality.ParseSubject(entityType, entityID)
	if err != nil {
		return nil, errors.NewFieldValidationError(err.Error(), []string{"entityType", "entityId"})
	}

	p, err := uc.profileRepo.GetLive(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to get personality profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Personality profile not found")
	}
	return p, nil
}

// ListUserProfilesUseCase returns the profile history of an account, newest first.
type ListUserProfilesUseCase struct {
	accountRepo account.Repository
	profileRepo personality.Repository
	logger      logger.Interface
}

func NewListUserProfilesUseCase(accountRepo account.Repository, profileRepo personality.Repository, logger logger.Interface) *ListUserProfilesUseCase {
	return &ListUserProfilesUseCase{accountRepo: accountRepo, profileRepo: profileRepo, logger: logger}
}

func (uc *ListUserProfilesUseCase) Execute(ctx context.Context, accountRef string) ([]*personality.Profile, error) {
	subject, err := personality.ParseSubject(string(personality.KindUser), accountRef)
	if err != nil {
		return nil, errors.NewFieldValidationError(err.Error(), []string{"accountRef"})
	}

	a, err := uc.accountRepo.GetBySID(ctx, accountRef)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("User not found", accountRef)
	}

	profiles, err := uc.profileRepo.ListLive(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list personality profiles: %w", err)
	}
	return profiles, nil
}

type DeleteProfileUseCase struct {
	profileRepo personality.Repository
	logger      logger.Interface
}

func NewDeleteProfileUseCase(profileRepo personality.Repository, logger logger.Interface) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{profileRepo: profileRepo, logger: logger}
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, callerRef, entityType, entityID string) error {
	subject, err := personality.ParseSubject(entityType, entityID)
	if err != nil {
		return errors.NewFieldValidationError(err.Error(), []string{"entityType", "entityId"})
	}
	if subject.Kind() == personality.KindUser && subject.Ref() != callerRef {
		return errors.NewForbiddenError("Cannot delete another user's personality profile")
	}

	deleted, err := uc.profileRepo.SoftDelete(ctx, subject)
	if err != nil {
		return fmt.Errorf("failed to delete personality profile: %w", err)
	}
	if !deleted {
		return errors.NewNotFoundError("Personality profile not found")
	}

	uc.logger.Infow("personality profile deleted", "entity_type", subject.Kind(), "entity_id", subject.Ref())
	return nil
}
