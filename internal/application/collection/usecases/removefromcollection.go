package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/id"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type RemoveFromCollectionCommand struct {
	AccountRef string
	List       account.ListKind
	ArtworkRef string
}

// RemoveFromCollectionUseCase detaches an artwork from a list. Removing a
// non-member succeeds without changes.
type RemoveFromCollectionUseCase struct {
	accountRepo    account.Repository
	artworkRepo    catalog.ArtworkRepository
	collectionRepo account.CollectionRepository
	logger         logger.Interface
}

func NewRemoveFromCollectionUseCase(
	accountRepo account.Repository,
	artworkRepo catalog.ArtworkRepository,
	collectionRepo account.CollectionRepository,
	logger logger.Interface,
) *RemoveFromCollectionUseCase {
	return &RemoveFromCollectionUseCase{
		accountRepo:    accountRepo,
		artworkRepo:    artworkRepo,
		collectionRepo: collectionRepo,
		logger:         logger,
	}
}

func (uc *RemoveFromCollectionUseCase) Execute(ctx context.Context, cmd RemoveFromCollectionCommand) error {
	if err := id.Validate(cmd.ArtworkRef, id.PrefixArtwork); err != nil {
		return errors.NewFieldValidationError("Invalid artwork reference", []string{"entityRef"}, err.Error())
	}

	a, err := uc.accountRepo.GetBySID(ctx, cmd.AccountRef)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountRef, "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return errors.NewNotFoundError("Account not found", cmd.AccountRef)
	}

	artwork, err := uc.artworkRepo.GetBySID(ctx, cmd.ArtworkRef)
	if err != nil {
		return fmt.Errorf("failed to get artwork: %w", err)
	}
	if artwork == nil {
		// an artwork that does not exist cannot be a member
		return nil
	}

	if err := uc.collectionRepo.Remove(ctx, a.ID(), artwork.ID(), cmd.List); err != nil {
		return fmt.Errorf("failed to remove from collection: %w", err)
	}

	uc.logger.Infow("artwork removed from collection", "account_id", a.SID(), "artwork_id", artwork.SID(), "list", cmd.List)
	return nil
}
