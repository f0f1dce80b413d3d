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

type RegisterCommand struct {
	Name        string
	Email       string
	Password    string
	Birthdate   *time.Time
	Preferences account.Preferences
}

// SessionResult is an account together with a freshly issued credential.
type SessionResult struct {
	Account    *account.Account
	Credential string
}

type RegisterUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	issuer      CredentialIssuer
	logger      logger.Interface
}

func NewRegisterUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	issuer CredentialIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		issuer:      issuer,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*SessionResult, error) {
	email := account.NormalizeEmail(cmd.Email)

	existing, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing account", "error", err)
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a, err := account.NewAccount(cmd.Name, email, hash, cmd.Birthdate, cmd.Preferences)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Create(ctx, a); err != nil {
		if stderrors.Is(err, account.ErrEmailTaken) {
			return nil, errors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to create account", "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	credential, err := uc.issuer.Issue(a)
	if err != nil {
		uc.logger.Errorw("failed to issue credential", "error", err, "account_id", a.SID())
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	uc.logger.Infow("account registered", "account_id", a.SID())
	return &SessionResult{Account: a, Credential: credential}, nil
}
