package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/db"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

const operationCollectionAdd = "collection_add"

type AddToCollectionCommand struct {
	AccountRef string
	List       account.ListKind
	Artwork    catalog.Draft
}

type AddToCollectionResult struct {
	Artwork *catalog.Artwork
	// Added is false when the artwork was already a member of the list
	Added bool
}

// AddToCollectionUseCase resolves the artwork and attaches it to one of the
// caller's lists, inside a unit of work when the store offers one.
type AddToCollectionUseCase struct {
	starter        db.UnitOfWorkStarter
	resolver       ArtworkResolver
	accountRepo    account.Repository
	collectionRepo account.CollectionRepository
	observer       db.FallbackObserver
	logger         logger.Interface
}

func NewAddToCollectionUseCase(
	starter db.UnitOfWorkStarter,
	resolver ArtworkResolver,
	accountRepo account.Repository,
	collectionRepo account.CollectionRepository,
	observer db.FallbackObserver,
	logger logger.Interface,
) *AddToCollectionUseCase {
	return &AddToCollectionUseCase{
		starter:        starter,
		resolver:       resolver,
		accountRepo:    accountRepo,
		collectionRepo: collectionRepo,
		observer:       observer,
		logger:         logger,
	}
}

func (uc *AddToCollectionUseCase) Execute(ctx context.Context, cmd AddToCollectionCommand) (*AddToCollectionResult, error) {
	ctx, unit := db.Attempt(ctx, uc.starter, operationCollectionAdd, uc.logger, uc.observer)

	resolved, err := uc.resolver.Execute(ctx, cmd.Artwork)
	if err != nil {
		unit.Abort()
		return nil, err
	}
	artwork := resolved.Artwork

	a, err := uc.accountRepo.GetBySID(ctx, cmd.AccountRef)
	if err != nil {
		unit.Abort()
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountRef, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		unit.Abort()
		return nil, errors.NewNotFoundError("Account not found", cmd.AccountRef)
	}

	present, err := uc.collectionRepo.Contains(ctx, a.ID(), artwork.ID(), cmd.List)
	if err != nil {
		unit.Abort()
		return nil, fmt.Errorf("failed to check collection: %w", err)
	}
	if present {
		unit.Abort()
		return &AddToCollectionResult{Artwork: artwork}, nil
	}

	added, err := uc.collectionRepo.Add(ctx, a.ID(), artwork.ID(), cmd.List)
	if err != nil {
		unit.Abort()
		return nil, fmt.Errorf("failed to add to collection: %w", err)
	}

	isolated := unit.Active()
	if err := unit.Commit(); err != nil {
		uc.logger.Errorw("failed to commit collection add", "account_id", a.SID(), "error", err)
		return nil, fmt.Errorf("failed to commit collection add: %w", err)
	}

	if added {
		uc.logger.Infow("artwork added to collection",
			"account_id", a.SID(),
			"artwork_id", artwork.SID(),
			"list", cmd.List,
			"isolated", isolated,
		)
	}
	return &AddToCollectionResult{Artwork: artwork, Added: added}, nil
}
