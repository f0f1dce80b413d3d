package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type ListCollectionUseCase struct {
	accountRepo    account.Repository
	collectionRepo account.CollectionRepository
	logger         logger.Interface
}

func NewListCollectionUseCase(accountRepo account.Repository, collectionRepo account.CollectionRepository, logger logger.Interface) *ListCollectionUseCase {
	return &ListCollectionUseCase{accountRepo: accountRepo, collectionRepo: collectionRepo, logger: logger}
}

func (uc *ListCollectionUseCase) Execute(ctx context.Context, accountRef string, list account.ListKind) ([]*catalog.Artwork, error) {
	a, err := uc.accountRepo.GetBySID(ctx, accountRef)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", accountRef, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Account not found", accountRef)
	}

	artworks, err := uc.collectionRepo.List(ctx, a.ID(), list)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}
	return artworks, nil
}
