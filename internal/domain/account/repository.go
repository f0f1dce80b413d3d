package account

import (
	"context"
	"errors"
)

// ErrEmailTaken is returned by Create and Update when another account owns the email.
var ErrEmailTaken = errors.New("email already registered")

// Repository defines the interface for account data operations.
// Lookups return (nil, nil) when nothing matches; soft-deleted accounts are invisible.
type Repository interface {
	// Create inserts the account and assigns its internal ID
	Create(ctx context.Context, a *Account) error

	GetByID(ctx context.Context, id uint) (*Account, error)

	// GetBySID retrieves an account by its public reference
	GetBySID(ctx context.Context, sid string) (*Account, error)

	GetByEmail(ctx context.Context, email string) (*Account, error)

	// GetByResetTokenHash finds the account holding a pending password reset
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*Account, error)

	// EmailHeldByDeleted reports whether a soft-deleted account still owns the email
	EmailHeldByDeleted(ctx context.Context, email string) (bool, error)

	Update(ctx context.Context, a *Account) error

	// SoftDelete flags the account as deleted; it is never removed
	SoftDelete(ctx context.Context, id uint) error
}
