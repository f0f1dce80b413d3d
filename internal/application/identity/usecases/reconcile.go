package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// ReconcileIdentityUseCase maps a verified provider profile to a local account,
// creating an externally authenticated one on first sign-in.
type ReconcileIdentityUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewReconcileIdentityUseCase(accountRepo account.Repository, logger logger.Interface) *ReconcileIdentityUseCase {
	return &ReconcileIdentityUseCase{accountRepo: accountRepo, logger: logger}
}

func (uc *ReconcileIdentityUseCase) Execute(ctx context.Context, profile *account.ExternalProfile) (*account.Account, error) {
	if profile == nil {
		return nil, errors.NewMissingProfileDataError("identity provider")
	}
	email := account.NormalizeEmail(profile.Email)
	if email == "" {
		return nil, errors.NewMissingProfileDataError(profile.Provider)
	}

	existing, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up account by email", "error", err)
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	a, err := account.NewExternalAccount(profile.DisplayName(), email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Create(ctx, a); err != nil {
		if !stderrors.Is(err, account.ErrEmailTaken) {
			uc.logger.Errorw("failed to create external account", "provider", profile.Provider, "error", err)
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
		// a concurrent sign-in created it first
		winner, qerr := uc.accountRepo.GetByEmail(ctx, email)
		if qerr != nil {
			return nil, fmt.Errorf("failed to re-read account after conflict: %w", qerr)
		}
		if winner == nil {
			// the email belongs to a deleted account
			return nil, errors.NewConflictError("Email already registered")
		}
		return winner, nil
	}

	uc.logger.Infow("external account created", "account_id", a.SID(), "provider", profile.Provider)
	return a, nil
}
