package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
)

// ArtworkModel represents the database persistence model for catalog artworks
type ArtworkModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:20"`
	GlobalID    string `gorm:"column:global_id;uniqueIndex;not null;size:191"`
	OriginalID  string `gorm:"column:original_id;not null;size:191"`
	Source      string `gorm:"not null;size:32;index"`
	Title       string `gorm:"not null;size:500"`
	Category    string `gorm:"not null;size:32;index"`
	ImageURL    string `gorm:"column:image_url;not null;size:1000"`
	Creator     string `gorm:"not null;size:255"`
	Year        string `gorm:"size:16"`
	Description string `gorm:"type:text"`
	Rating      *float64
	Metadata    datatypes.JSONMap
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ArtworkModel) TableName() string {
	return constants.TableArtworks
}

// AccountArtworkModel is one membership of an artwork in an account's list.
// The composite primary key makes each list a set.
type AccountArtworkModel struct {
	AccountID uint   `gorm:"primaryKey;autoIncrement:false"`
	ArtworkID uint   `gorm:"primaryKey;autoIncrement:false;index"`
	List      string `gorm:"primaryKey;size:16"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (AccountArtworkModel) TableName() string {
	return constants.TableAccountArtworks
}
