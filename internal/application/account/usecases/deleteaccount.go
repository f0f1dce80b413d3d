package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type DeleteAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewDeleteAccountUseCase(accountRepo account.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo, logger: logger}
}

// Execute soft deletes the account. Its credentials stop working because
// every authenticated request reloads the account.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, accountRef string) error {
	a, err := uc.accountRepo.GetBySID(ctx, accountRef)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", accountRef, "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return errors.NewNotFoundError("Account not found")
	}

	if err := uc.accountRepo.SoftDelete(ctx, a.ID()); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete account", "account_id", accountRef, "error", err)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted", "account_id", accountRef)
	return nil
}
