package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/token"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

// DefaultResetValidity is how long a mailed reset token can be used
const DefaultResetValidity = 30 * time.Minute

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	accountRepo account.Repository
	tokens      ResetTokenGenerator
	mailer      PasswordResetMailer
	validity    time.Duration
	now         func() time.Time
	logger      logger.Interface
}

func NewRequestPasswordResetUseCase(
	accountRepo account.Repository,
	tokens ResetTokenGenerator,
	mailer PasswordResetMailer,
	validity time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	if validity <= 0 {
		validity = DefaultResetValidity
	}
	return &RequestPasswordResetUseCase{
		accountRepo: accountRepo,
		tokens:      tokens,
		mailer:      mailer,
		validity:    validity,
		now:         time.Now,
		logger:      logger,
	}
}

// Execute never reveals whether the email belongs to an account. Only
// storage failures surface; mail delivery problems are logged.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	a, err := uc.accountRepo.GetByEmail(ctx, account.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get account by email", "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		uc.logger.Infow("password reset requested for unknown email", "email", utils.MaskEmail(cmd.Email))
		return nil
	}

	plain, hash, err := uc.tokens.Generate(token.PrefixPasswordReset)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err, "account_id", a.SID())
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	a.IssueResetToken(hash, uc.now().UTC().Add(uc.validity))
	if err := uc.accountRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to store reset token", "error", err, "account_id", a.SID())
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := uc.mailer.SendPasswordResetEmail(a.Email(), a.Name(), plain); err != nil {
		uc.logger.Warnw("failed to send password reset email", "error", err, "account_id", a.SID())
	}

	uc.logger.Infow("password reset requested", "account_id", a.SID())
	return nil
}

type ResetPasswordCommand struct {
	Token    string
	Password string
}

type ResetPasswordUseCase struct {
	accountRepo account.Repository
	tokens      ResetTokenGenerator
	hasher      account.PasswordHasher
	now         func() time.Time
	logger      logger.Interface
}

func NewResetPasswordUseCase(
	accountRepo account.Repository,
	tokens ResetTokenGenerator,
	hasher account.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		accountRepo: accountRepo,
		tokens:      tokens,
		hasher:      hasher,
		now:         time.Now,
		logger:      logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	a, err := uc.accountRepo.GetByResetTokenHash(ctx, uc.tokens.Hash(cmd.Token))
	if err != nil {
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if a == nil || a.ResetTokenExpired(uc.now()) {
		return errors.NewBadRequestError("Invalid or expired reset token")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	a.CompletePasswordReset(hash)
	if err := uc.accountRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "account_id", a.SID())
		return fmt.Errorf("failed to update password: %w", err)
	}

	uc.logger.Infow("password reset completed", "account_id", a.SID())
	return nil
}
