package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountNotFound    ErrorType = "account_not_found"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypePasswordNotSet     ErrorType = "password_not_set"
	ErrorTypeMissingProfileData ErrorType = "missing_profile_data"
	ErrorTypeOAuthError         ErrorType = "oauth_error"
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password.
	ShouldLog bool
	// SecurityEvent marks failures worth tracking for abuse detection.
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the AppError
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError reports a password mismatch.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid password",
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: true,
	}
}

// NewAccountNotFoundError is returned by login when no account has the email.
func NewAccountNotFoundError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountNotFound,
			Message: "Account not found",
			Code:    http.StatusNotFound,
		},
	}
}

// NewTokenExpiredError creates an error for an elapsed credential or reset token
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: fmt.Sprintf("%s has expired", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Please sign in again",
		},
	}
}

// NewTokenInvalidError creates an error for malformed or badly signed tokens
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("Invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewPasswordNotSetError is returned when an externally authenticated account tries a password login.
func NewPasswordNotSetError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypePasswordNotSet,
			Message: "Password not set for this account",
			Code:    http.StatusUnauthorized,
			Details: "This account signs in with an external provider",
		},
	}
}

// NewMissingProfileDataError reports an identity provider profile without a usable email.
func NewMissingProfileDataError(provider string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeMissingProfileData,
			Message: fmt.Sprintf("No email found in %s profile", provider),
			Code:    http.StatusBadRequest,
		},
		ShouldLog: true,
	}
}

// NewOAuthError wraps a failure at a given stage of the provider round trip.
func NewOAuthError(provider, stage string, code int, details ...string) *AuthError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOAuthError,
			Message: fmt.Sprintf("%s authentication failed during %s", provider, stage),
			Code:    code,
			Details: detail,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// GetAuthError extracts AuthError from error
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsErrorType reports whether err carries the given type, through AuthError wrapping.
func IsErrorType(err error, t ErrorType) bool {
	return isType(err, t)
}
