package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	issuer      CredentialIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	issuer CredentialIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		issuer:      issuer,
		logger:      logger,
	}
}

// Execute distinguishes an unknown email (404) from a wrong password (401).
// Accounts created through an identity provider have no password to check.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*SessionResult, error) {
	a, err := uc.accountRepo.GetByEmail(ctx, account.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewAccountNotFoundError()
	}
	if !a.HasPassword() {
		return nil, errors.NewPasswordNotSetError()
	}
	if !uc.hasher.Verify(cmd.Password, *a.PasswordHash()) {
		uc.logger.Infow("password mismatch", "account_id", a.SID())
		return nil, errors.NewInvalidCredentialsError()
	}

	credential, err := uc.issuer.Issue(a)
	if err != nil {
		uc.logger.Errorw("failed to issue credential", "error", err, "account_id", a.SID())
		return nil, fmt.Errorf("failed to issue credential: %w", err)
	}

	uc.logger.Infow("account signed in", "account_id", a.SID())
	return &SessionResult{Account: a, Credential: credential}, nil
}
