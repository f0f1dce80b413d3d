package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type GetAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo, logger: logger}
}

// Execute loads a live account by its public reference. Soft-deleted accounts are not found.
func (uc *GetAccountUseCase) Execute(ctx context.Context, accountRef string) (*account.Account, error) {
	a, err := uc.accountRepo.GetBySID(ctx, accountRef)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", accountRef, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}
	return a, nil
}
