// Package catalog holds artworks imported from external catalogs and the genres that classify them.
package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// Source is the external catalog an artwork was imported from
type Source string

const (
	SourceIGDB        Source = "IGDB"
	SourceTMDB        Source = "TMDB"
	SourceGoogleBooks Source = "GoogleBooks"
	SourceMetMuseum   Source = "MetMuseum"
	SourceChicagoArt  Source = "ChicagoArt"
	SourceSpotify     Source = "Spotify"
)

// Sources lists every accepted source.
var Sources = []Source{SourceIGDB, SourceTMDB, SourceGoogleBooks, SourceMetMuseum, SourceChicagoArt, SourceSpotify}

func (s Source) Valid() bool {
	return slices.Contains(Sources, s)
}

// Category is the kind of work
type Category string

const (
	CategoryFilm       Category = "cine"
	CategoryMusic      Category = "música"
	CategoryLiterature Category = "literatura"
	CategoryVisualArt  Category = "arte-visual"
	CategoryVideoGames Category = "videojuegos"
)

// Categories lists every accepted category.
var Categories = []Category{CategoryFilm, CategoryMusic, CategoryLiterature, CategoryVisualArt, CategoryVideoGames}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Metadata is the free-form part of an artwork. Well known keys are
// genres, duration, label and contextLink.
type Metadata map[string]any

// Draft is an externally sourced artwork payload before it is persisted.
type Draft struct {
	GlobalID    string
	OriginalID  string
	Source      string
	Title       string
	Category    string
	ImageURL    string
	Creator     string
	Year        string
	Description string
	Rating      *float64
	Metadata    Metadata
}

// MissingFields names every required field that is blank, using payload names.
func (d Draft) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"id", d.GlobalID},
		{"originalId", d.OriginalID},
		{"source", d.Source},
		{"title", d.Title},
		{"category", d.Category},
		{"imageUrl", d.ImageURL},
		{"creator", d.Creator},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Validate reports every problem of the draft at once.
func (d Draft) Validate() error {
	if missing := d.MissingFields(); len(missing) > 0 {
		return errors.NewFieldValidationError("Missing required artwork fields", missing,
			"missing: "+strings.Join(missing, ", "))
	}

	var fields, problems []string
	if !Source(d.Source).Valid() {
		fields = append(fields, "source")
		problems = append(problems, fmt.Sprintf("source %q is not supported", d.Source))
	}
	if !Category(d.Category).Valid() {
		fields = append(fields, "category")
		problems = append(problems, fmt.Sprintf("category %q is not supported", d.Category))
	}
	if d.Rating != nil && (*d.Rating < 0 || *d.Rating > 10) {
		fields = append(fields, "rating")
		problems = append(problems, "rating must be between 0 and 10")
	}
	if len(fields) > 0 {
		return errors.NewFieldValidationError("Invalid artwork fields", fields, strings.Join(problems, "; "))
	}
	return nil
}

// Artwork is a normalized external artifact. GlobalID is its sole deduplication key.
type Artwork struct {
	id          uint
	sid         string
	globalID    string
	originalID  string
	source      Source
	title       string
	category    Category
	imageURL    string
	creator     string
	year        string
	description string
	rating      *float64
	metadata    Metadata
	createdAt   time.Time
}

// NewArtwork validates the draft and builds an unsaved artwork.
func NewArtwork(d Draft) (*Artwork, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	sid, err := id.New(id.PrefixArtwork)
	if err != nil {
		return nil, fmt.Errorf("failed to generate artwork reference: %w", err)
	}
	md := d.Metadata
	if md == nil {
		md = Metadata{}
	}
	return &Artwork{
		sid:         sid,
		globalID:    strings.TrimSpace(d.GlobalID),
		originalID:  strings.TrimSpace(d.OriginalID),
		source:      Source(d.Source),
		title:       strings.TrimSpace(d.Title),
		category:    Category(d.Category),
		imageURL:    strings.TrimSpace(d.ImageURL),
		creator:     strings.TrimSpace(d.Creator),
		year:        d.Year,
		description: d.Description,
		rating:      d.Rating,
		metadata:    md,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ArtworkState is the persisted form of an artwork
type ArtworkState struct {
	ID          uint
	SID         string
	GlobalID    string
	OriginalID  string
	Source      Source
	Title       string
	Category    Category
	ImageURL    string
	Creator     string
	Year        string
	Description string
	Rating      *float64
	Metadata    Metadata
	CreatedAt   time.Time
}

// ReconstructArtwork rebuilds an artwork from persistence
func ReconstructArtwork(s ArtworkState) *Artwork {
	return &Artwork{
		id:          s.ID,
		sid:         s.SID,
		globalID:    s.GlobalID,
		originalID:  s.OriginalID,
		source:      s.Source,
		title:       s.Title,
		category:    s.Category,
		imageURL:    s.ImageURL,
		creator:     s.Creator,
		year:        s.Year,
		description: s.Description,
		rating:      s.Rating,
		metadata:    s.Metadata,
		createdAt:   s.CreatedAt,
	}
}

func (a *Artwork) State() ArtworkState {
	return ArtworkState{
		ID:          a.id,
		SID:         a.sid,
		GlobalID:    a.globalID,
		OriginalID:  a.originalID,
		Source:      a.source,
		Title:       a.title,
		Category:    a.category,
		ImageURL:    a.imageURL,
		Creator:     a.creator,
		Year:        a.year,
		Description: a.description,
		Rating:      a.rating,
		Metadata:    a.metadata,
		CreatedAt:   a.createdAt,
	}
}

func (a *Artwork) ID() uint             { return a.id }
func (a *Artwork) SID() string          { return a.sid }
func (a *Artwork) GlobalID() string     { return a.globalID }
func (a *Artwork) OriginalID() string   { return a.originalID }
func (a *Artwork) Source() Source       { return a.source }
func (a *Artwork) Title() string        { return a.title }
func (a *Artwork) Category() Category   { return a.category }
func (a *Artwork) ImageURL() string     { return a.imageURL }
func (a *Artwork) Creator() string      { return a.creator }
func (a *Artwork) Year() string         { return a.year }
func (a *Artwork) Description() string  { return a.description }
func (a *Artwork) Rating() *float64     { return a.rating }
func (a *Artwork) Metadata() Metadata   { return a.metadata }
func (a *Artwork) CreatedAt() time.Time { return a.createdAt }

// SetID is called by the repository after insert
func (a *Artwork) SetID(id uint) {
	a.id = id
}

// SetDescription replaces the description, used to store a sanitised copy.
func (a *Artwork) SetDescription(description string) {
	a.description = description
}
