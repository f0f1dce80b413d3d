package dto

import (
	"time"

	"github.com/artsoul-app/artsoul/internal/domain/account"
)

// PreferencesPayload is the canonical preference schema accepted on writes.
type PreferencesPayload struct {
	FavoriteTypes  []string `json:"favorite_types"`
	FavoriteGenres []string `json:"favorite_genres"`
}

func (p *PreferencesPayload) ToDomain() account.Preferences {
	if p == nil {
		return account.Preferences{}
	}
	return account.Preferences{FavoriteTypes: p.FavoriteTypes, FavoriteGenres: p.FavoriteGenres}
}

// RegisterRequest represents the request to create a local account
type RegisterRequest struct {
	Name            string              `json:"name" binding:"required,max=100"`
	Birthdate       string              `json:"birthdate" binding:"required,isodate"`
	Email           string              `json:"email" binding:"required,email"`
	Password        string              `json:"password" binding:"required,min=8,maxbytes=72"`
	ConfirmPassword string              `json:"confirmPassword" binding:"required,eqfield=Password"`
	Preferences     *PreferencesPayload `json:"preferences"`
}

// LoginRequest represents the request to sign in with a password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAccountRequest carries a partial update; absent fields stay unchanged
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Birthdate   *string             `json:"birthdate" binding:"omitempty,isodate"`
	Email       *string             `json:"email" binding:"omitempty,email"`
	Password    *string             `json:"password" binding:"omitempty,min=8,maxbytes=72"`
	Preferences *PreferencesPayload `json:"preferences"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8,maxbytes=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// AccountResponse is the client view of an account. The password hash and
// reset token never leave the server.
type AccountResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Birthdate          string              `json:"birthdate,omitempty"`
	Preferences        account.Preferences `json:"preferences"`
	PersonalityProfile string              `json:"personality_profile,omitempty"`
	HasPassword        bool                `json:"has_password"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func ToAccountResponse(a *account.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	resp := &AccountResponse{
		ID:          a.SID(),
		Name:        a.Name(),
		Email:       a.Email(),
		Preferences: a.Preferences(),
		HasPassword: a.HasPassword(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
	if b := a.Birthdate(); b != nil {
		resp.Birthdate = b.Format(time.DateOnly)
	}
	if ref := a.PersonalityProfileRef(); ref != nil {
		resp.PersonalityProfile = *ref
	}
	if resp.Preferences.FavoriteTypes == nil {
		resp.Preferences.FavoriteTypes = []string{}
	}
	if resp.Preferences.FavoriteGenres == nil {
		resp.Preferences.FavoriteGenres = []string{}
	}
	return resp
}

// AccountSummary is the compact user object handed back after an identity
// provider round trip.
type AccountSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate,omitempty"`
}

func ToAccountSummary(a *account.Account) AccountSummary {
	s := AccountSummary{ID: a.SID(), Name: a.Name(), Email: a.Email()}
	if b := a.Birthdate(); b != nil {
		s.Birthdate = b.Format(time.DateOnly)
	}
	return s
}

// SessionResponse is returned by every endpoint that signs an account in.
type SessionResponse struct {
	Credential string           `json:"credential"`
	Account    *AccountResponse `json:"account"`
}
