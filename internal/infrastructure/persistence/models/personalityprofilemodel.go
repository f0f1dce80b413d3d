package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
)

// TraitScoreJSON is the stored shape of one OCEAN trait
type TraitScoreJSON struct {
	Facets map[string]float64 `json:"facets,omitempty"`
	Total  float64            `json:"total"`
}

// PersonalityProfileModel stores a profile of an account, artwork or genre.
// EntityType and EntityRef together form the polymorphic subject reference.
type PersonalityProfileModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:20"`
	EntityType string `gorm:"not null;size:16;index:idx_profiles_subject,priority:1"`
	EntityRef  string `gorm:"not null;size:20;index:idx_profiles_subject,priority:2"`
	Scores     datatypes.JSONType[map[string]TraitScoreJSON]
	TotalScore *float64
	TestType   string    `gorm:"not null;size:8;default:quick"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PersonalityProfileModel) TableName() string {
	return constants.TablePersonalityProfiles
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&AccountModel{},
		&ArtworkModel{},
		&AccountArtworkModel{},
		&GenreModel{},
		&PersonalityProfileModel{},
	}
}
