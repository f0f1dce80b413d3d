package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

const operationPersonalitySave = "personality_save"

type SaveProfileCommand struct {
	// CallerRef is the authenticated account; user profiles may only be written by their owner
	CallerRef  string
	EntityType string
	EntityID   string
	Scores     map[string]any
	TotalScore *float64
	TestType   string
}

type SaveProfileResult struct {
	Profile *personality.Profile
	Created bool
}

// SaveProfileUseCase creates or rescores the live profile of a subject.
type SaveProfileUseCase struct {
	starter     db.UnitOfWorkStarter
	profileRepo personality.Repository
	subjects    *SubjectResolvers
	observer    db.FallbackObserver
	logger      logger.Interface
}

func NewSaveProfileUseCase(
	starter db.UnitOfWorkStarter,
	profileRepo personality.Repository,
	subjects *SubjectResolvers,
	observer db.FallbackObserver,
	logger logger.Interface,
) *SaveProfileUseCase {
	return &SaveProfileUseCase{
		starter:     starter,
		profileRepo: profileRepo,
		subjects:    subjects,
		observer:    observer,
		logger:      logger,
	}
}

func (uc *SaveProfileUseCase) Execute(ctx context.Context, cmd SaveProfileCommand) (*SaveProfileResult, error) {
	subject, err := personality.ParseSubject(cmd.EntityType, cmd.EntityID)
	if err != nil {
		return nil, errors.NewFieldValidationError(err.Error(), []string{"entityType", "entityId"})
	}
	if subject.Kind() == personality.KindUser && subject.Ref() != cmd.CallerRef {
		return nil, errors.NewForbiddenError("Cannot write another user's personality profile")
	}
	scores, err := personality.ParseScores(cmd.Scores)
	if err != nil {
		return nil, err
	}
	testType, err := personality.ParseTestType(cmd.TestType)
	if err != nil {
		return nil, errors.NewFieldValidationError(err.Error(), []string{"testType"})
	}

	ctx, unit := db.Attempt(ctx, uc.starter, operationPersonalitySave, uc.logger, uc.observer)

	link, err := uc.subjects.resolve(ctx, subject)
	if err != nil {
		unit.Abort()
		return nil, err
	}

	profile, err := uc.profileRepo.GetLive(ctx, subject)
	if err != nil {
		unit.Abort()
		return nil, fmt.Errorf("failed to get personality profile: %w", err)
	}

	created := profile == nil
	if created {
		profile, err = personality.NewProfile(subject, scores, cmd.TotalScore, testType)
		if err != nil {
			unit.Abort()
			return nil, err
		}
		err = uc.profileRepo.Create(ctx, profile)
	} else {
		profile.Rescore(scores, cmd.TotalScore, testType)
		err = uc.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		unit.Abort()
		return nil, fmt.Errorf("failed to save personality profile: %w", err)
	}

	if link != nil {
		if err := link(ctx, profile.SID()); err != nil {
			unit.Abort()
			uc.logger.Errorw("failed to link personality profile", "entity_type", subject.Kind(), "entity_id", subject.Ref(), "error", err)
			return nil, fmt.Errorf("failed to link personality profile: %w", err)
		}
	}

	if err := unit.Commit(); err != nil {
		uc.logger.Errorw("failed to commit personality profile", "entity_type", subject.Kind(), "entity_id", subject.Ref(), "error", err)
		return nil, fmt.Errorf("failed to commit personality profile: %w", err)
	}

	uc.logger.Infow("personality profile saved",
		"profile_id", profile.SID(),
		"entity_type", subject.Kind(),
		"entity_id", subject.Ref(),
		"created", created,
	)
	return &SaveProfileResult{Profile: profile, Created: created}, nil
}
