package usecases

import (
	"strings"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// StartOAuthUseCase builds the consent URL, threading the caller's return
// address through the provider state.
type StartOAuthUseCase struct {
	provider IdentityProvider
	allowed  *ReturnAddressPolicy
	logger   logger.Interface
}

// NewStartOAuthUseCase accepts a nil provider when sign-in with the provider is not configured.
func NewStartOAuthUseCase(provider IdentityProvider, allowedRedirects []string, logger logger.Interface) *StartOAuthUseCase {
	return &StartOAuthUseCase{provider: provider, allowed: NewReturnAddressPolicy(allowedRedirects), logger: logger}
}

func (uc *StartOAuthUseCase) Execute(redirectURI string) (string, error) {
	if uc.provider == nil {
		return "", errors.NewServiceUnavailableError("Google sign-in is not configured")
	}

	redirectURI = strings.TrimSpace(redirectURI)
	if redirectURI != "" {
		if err := validateReturnAddress(redirectURI, uc.allowed); err != nil {
			return "", err
		}
	}

	return uc.provider.AuthURL(EncodeState(redirectURI)), nil
}

func validateReturnAddress(uri string, policy *ReturnAddressPolicy) error {
	if !policy.Usable(uri) {
		return errors.NewFieldValidationError("Invalid redirect_uri", []string{"redirect_uri"})
	}
	if !policy.Allowed(uri) {
		return errors.NewFieldValidationError("redirect_uri is not allowed", []string{"redirect_uri"})
	}
	return nil
}
