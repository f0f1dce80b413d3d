// Package mappers converts between domain aggregates and persistence models.
package mappers

import (
	"gorm.io/datatypes"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
)

// AccountToEntity converts a persistence model to an account aggregate
func AccountToEntity(m *models.AccountModel) *account.Account {
	if m == nil {
		return nil
	}
	prefs := m.Preferences.Data()
	return account.Reconstruct(account.State{
		ID:                    m.ID,
		SID:                   m.SID,
		Name:                  m.Name,
		Email:                 m.Email,
		PasswordHash:          m.PasswordHash,
		Birthdate:             m.Birthdate,
		Preferences:           account.Preferences{FavoriteTypes: prefs.FavoriteTypes, FavoriteGenres: prefs.FavoriteGenres},
		PersonalityProfileRef: m.PersonalityProfileSID,
		ResetTokenHash:        m.ResetTokenHash,
		ResetTokenExpiresAt:   m.ResetTokenExpiresAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	})
}

// AccountToModel converts an account aggregate to its persistence model
func AccountToModel(a *account.Account) *models.AccountModel {
	s := a.State()
	return &models.AccountModel{
		ID:           s.ID,
		SID:          s.SID,
		Email:        s.Email,
		Name:         s.Name,
		PasswordHash: s.PasswordHash,
		Birthdate:    s.Birthdate,
		Preferences: datatypes.NewJSONType(models.PreferencesJSON{
			FavoriteTypes:  s.Preferences.FavoriteTypes,
			FavoriteGenres: s.Preferences.FavoriteGenres,
		}),
		PersonalityProfileSID: s.PersonalityProfileRef,
		ResetTokenHash:        s.ResetTokenHash,
		ResetTokenExpiresAt:   s.ResetTokenExpiresAt,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
