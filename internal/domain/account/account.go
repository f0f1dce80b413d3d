// Package account holds the account aggregate and its collection relations.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// Preferences is the canonical preference schema of an account.
type Preferences struct {
	FavoriteTypes  []string `json:"favorite_types"`
	FavoriteGenres []string `json:"favorite_genres"`
}

// Account represents the account aggregate root
type Account struct {
	id                    uint
	sid                   string
	name                  string
	email                 string
	passwordHash          *string
	birthdate             *time.Time
	preferences           Preferences
	personalityProfileRef *string
	resetTokenHash        *string
	resetTokenExpiresAt   *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

// NewAccount creates an account for a local password sign-up.
func NewAccount(name, email, passwordHash string, birthdate *time.Time, prefs Preferences) (*Account, error) {
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	a, err := newAccount(name, email)
	if err != nil {
		return nil, err
	}
	a.passwordHash = &passwordHash
	a.birthdate = birthdate
	a.preferences = prefs
	return a, nil
}

// NewExternalAccount creates an account authenticated by an identity provider.
// It has no password hash.
func NewExternalAccount(name, email string) (*Account, error) {
	return newAccount(name, email)
}

func newAccount(name, email string) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	sid, err := id.New(id.PrefixAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account reference: %w", err)
	}
	now := time.Now().UTC()
	return &Account{
		sid:       sid,
		name:      strings.TrimSpace(name),
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NormalizeEmail lowercases and trims an address so lookups match registration.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// State is the persisted form of an account, used by repositories.
type State struct {
	ID                    uint
	SID                   string
	Name                  string
	Email                 string
	PasswordHash          *string
	Birthdate             *time.Time
	Preferences           Preferences
	PersonalityProfileRef *string
	ResetTokenHash        *string
	ResetTokenExpiresAt   *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Reconstruct rebuilds an account from persistence
func Reconstruct(s State) *Account {
	return &Account{
		id:                    s.ID,
		sid:                   s.SID,
		name:                  s.Name,
		email:                 s.Email,
		passwordHash:          s.PasswordHash,
		birthdate:             s.Birthdate,
		preferences:           s.Preferences,
		personalityProfileRef: s.PersonalityProfileRef,
		resetTokenHash:        s.ResetTokenHash,
		resetTokenExpiresAt:   s.ResetTokenExpiresAt,
		createdAt:             s.CreatedAt,
		updatedAt:             s.UpdatedAt,
	}
}

// State returns the persisted form of the account
func (a *Account) State() State {
	return State{
		ID:                    a.id,
		SID:                   a.sid,
		Name:                  a.name,
		Email:                 a.email,
		PasswordHash:          a.passwordHash,
		Birthdate:             a.birthdate,
		Preferences:           a.preferences,
		PersonalityProfileRef: a.personalityProfileRef,
		ResetTokenHash:        a.resetTokenHash,
		ResetTokenExpiresAt:   a.resetTokenExpiresAt,
		CreatedAt:             a.createdAt,
		UpdatedAt:             a.updatedAt,
	}
}

func (a *Account) ID() uint                       { return a.id }
func (a *Account) SID() string                    { return a.sid }
func (a *Account) Name() string                   { return a.name }
func (a *Account) Email() string                  { return a.email }
func (a *Account) PasswordHash() *string          { return a.passwordHash }
func (a *Account) Birthdate() *time.Time          { return a.birthdate }
func (a *Account) Preferences() Preferences       { return a.preferences }
func (a *Account) PersonalityProfileRef() *string { return a.personalityProfileRef }
func (a *Account) CreatedAt() time.Time           { return a.createdAt }
func (a *Account) UpdatedAt() time.Time           { return a.updatedAt }

// SetID is called by the repository after insert
func (a *Account) SetID(id uint) {
	a.id = id
}

// HasPassword is false for accounts created through an identity provider.
func (a *Account) HasPassword() bool {
	return a.passwordHash != nil && *a.passwordHash != ""
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
}

func (a *Account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	a.name = name
	a.touch()
	return nil
}

func (a *Account) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	a.email = email
	a.touch()
	return nil
}

func (a *Account) SetBirthdate(d time.Time) {
	a.birthdate = &d
	a.touch()
}

func (a *Account) SetPreferences(p Preferences) {
	a.preferences = p
	a.touch()
}

func (a *Account) SetPasswordHash(hash string) {
	a.passwordHash = &hash
	a.touch()
}

func (a *Account) LinkPersonalityProfile(ref string) {
	a.personalityProfileRef = &ref
	a.touch()
}

// IssueResetToken stores the hash of a freshly generated reset token.
func (a *Account) IssueResetToken(tokenHash string, expiresAt time.Time) {
	a.resetTokenHash = &tokenHash
	a.resetTokenExpiresAt = &expiresAt
	a.touch()
}

// ResetTokenExpired reports whether the pending reset token can no longer be used.
func (a *Account) ResetTokenExpired(now time.Time) bool {
	return a.resetTokenExpiresAt == nil || !now.Before(*a.resetTokenExpiresAt)
}

// CompletePasswordReset replaces the password and clears the reset token.
func (a *Account) CompletePasswordReset(passwordHash string) {
	a.passwordHash = &passwordHash
	a.resetTokenHash = nil
	a.resetTokenExpiresAt = nil
	a.touch()
}
