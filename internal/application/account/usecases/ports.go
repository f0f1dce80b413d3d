package usecases

import "github.com/artsoul-app/artsoul/internal/domain/account"

// CredentialIssuer signs session credentials for accounts
type CredentialIssuer interface {
	Issue(a *account.Account) (string, error)
}

// PasswordResetMailer delivers the reset token to the account owner
type PasswordResetMailer interface {
	SendPasswordResetEmail(to, name, token string) error
}

// ResetTokenGenerator creates reset tokens that are persisted only as a hash
type ResetTokenGenerator interface {
	Generate(prefix string) (plainToken string, hash string, err error)
	Hash(plainToken string) string
}
