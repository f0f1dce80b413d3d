package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// UpdateAccountCommand holds a partial update; nil fields are left as they are.
type UpdateAccountCommand struct {
	AccountRef  string
	Name        *string
	Email       *string
	Birthdate   *time.Time
	Password    *string
	Preferences *account.Preferences
}

type UpdateAccountUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	logger      logger.Interface
}

func NewUpdateAccountUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	logger logger.Interface,
) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateAccountUseCase) Execute(ctx context.Context, cmd UpdateAccountCommand) (*account.Account, error) {
	a, err := uc.accountRepo.GetBySID(ctx, cmd.AccountRef)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", cmd.AccountRef, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Account not found")
	}

	if cmd.Name != nil {
		if err := a.Rename(*cmd.Name); err != nil {
			return nil, errors.NewFieldValidationError(err.Error(), []string{"name"})
		}
	}

	if cmd.Email != nil {
		email := account.NormalizeEmail(*cmd.Email)
		if email != a.Email() {
			owner, err := uc.accountRepo.GetByEmail(ctx, email)
			if err != nil {
				uc.logger.Errorw("failed to check email owner", "error", err)
				return nil, fmt.Errorf("failed to check email owner: %w", err)
			}
			if owner != nil {
				return nil, errors.NewConflictError("Email already registered")
			}
			if err := a.ChangeEmail(email); err != nil {
				return nil, errors.NewFieldValidationError(err.Error(), []string{"email"})
			}
		}
	}

	if cmd.Birthdate != nil {
		a.SetBirthdate(*cmd.Birthdate)
	}

	if cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		a.SetPasswordHash(hash)
	}

	if cmd.Preferences != nil {
		a.SetPreferences(*cmd.Preferences)
	}

	if err := uc.accountRepo.Update(ctx, a); err != nil {
		if stderrors.Is(err, account.ErrEmailTaken) {
			return nil, errors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to update account", "account_id", a.SID(), "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	uc.logger.Infow("account updated", "account_id", a.SID())
	return a, nil
}
