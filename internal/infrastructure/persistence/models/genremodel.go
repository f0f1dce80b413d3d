package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
)

// GenreModel represents the database persistence model for genres
type GenreModel struct {
	ID                    uint    `gorm:"primarykey"`
	SID                   string  `gorm:"column:sid;uniqueIndex;not null;size:20"`
	Name                  string  `gorm:"uniqueIndex;not null;size:100"`
	Description           string  `gorm:"type:text"`
	PersonalityProfileSID *string `gorm:"column:personality_profile_sid;size:20"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return constants.TableGenres
}
