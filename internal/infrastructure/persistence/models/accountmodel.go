package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
)

// PreferencesJSON is the stored shape of account preferences
type PreferencesJSON struct {
	FavoriteTypes  []string `json:"favorite_types"`
	FavoriteGenres []string `json:"favorite_genres"`
}

// AccountModel represents the database persistence model for accounts
type AccountModel struct {
	ID                    uint    `gorm:"primarykey"`
	SID                   string  `gorm:"column:sid;uniqueIndex;not null;size:20"`
	Email                 string  `gorm:"uniqueIndex;not null;size:255"`
	Name                  string  `gorm:"not null;size:100"`
	PasswordHash          *string `gorm:"size:255"`
	Birthdate             *time.Time
	Preferences           datatypes.JSONType[PreferencesJSON]
	PersonalityProfileSID *string `gorm:"column:personality_profile_sid;size:20"`
	ResetTokenHash        *string `gorm:"size:64;index:idx_accounts_reset_token"`
	ResetTokenExpiresAt   *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}
