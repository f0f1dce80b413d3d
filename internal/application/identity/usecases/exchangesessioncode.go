package usecases

import (
	"context"
	"fmt"
	"strings"

	accountusecases "github.com/artsoul-app/artsoul/internal/application/account/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

// ExchangeSessionCodeUseCase redeems a one-time code handed out by the
// callback. A code redeems once.
type ExchangeSessionCodeUseCase struct {
	codes       SessionCodeStore
	accountRepo account.Repository
	logger      logger.Interface
}

func NewExchangeSessionCodeUseCase(codes SessionCodeStore, accountRepo account.Repository, logger logger.Interface) *ExchangeSessionCodeUseCase {
	return &ExchangeSessionCodeUseCase{codes: codes, accountRepo: accountRepo, logger: logger}
}

func (uc *ExchangeSessionCodeUseCase) Execute(ctx context.Context, code string) (*accountusecases.SessionResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.NewFieldValidationError("Session code is required", []string{"code"})
	}

	grant, err := uc.codes.Take(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to redeem session code", "error", err)
		return nil, fmt.Errorf("failed to redeem session code: %w", err)
	}
	if grant == nil {
		uc.logger.Infow("session code not found or already used", "code", utils.MaskSecret(code, 8))
		return nil, errors.NewNotFoundError("Session code not found or expired")
	}

	a, err := uc.accountRepo.GetBySID(ctx, grant.AccountRef)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Account not found", grant.AccountRef)
	}

	return &accountusecases.SessionResult{Account: a, Credential: grant.Credential}, nil
}
