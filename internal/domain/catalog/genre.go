package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// Genre classifies artworks and can carry its own personality profile.
type Genre struct {
	id                    uint
	sid                   string
	name                  string
	description           string
	personalityProfileRef *string
	createdAt             time.Time
}

func NewGenre(name, description string) (*Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("genre name is required")
	}
	sid, err := id.New(id.PrefixGenre)
	if err != nil {
		return nil, fmt.Errorf("failed to generate genre reference: %w", err)
	}
	return &Genre{
		sid:         sid,
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   time.Now().UTC(),
	}, nil
}

// GenreState is the persisted form of a genre
type GenreState struct {
	ID                    uint
	SID                   string
	Name                  string
	Description           string
	PersonalityProfileRef *string
	CreatedAt             time.Time
}

func ReconstructGenre(s GenreState) *Genre {
	return &Genre{
		id:                    s.ID,
		sid:                   s.SID,
		name:                  s.Name,
		description:           s.Description,
		personalityProfileRef: s.PersonalityProfileRef,
		createdAt:             s.CreatedAt,
	}
}

func (g *Genre) State() GenreState {
	return GenreState{
		ID:                    g.id,
		SID:                   g.sid,
		Name:                  g.name,
		Description:           g.description,
		PersonalityProfileRef: g.personalityProfileRef,
		CreatedAt:             g.createdAt,
	}
}

func (g *Genre) ID() uint                       { return g.id }
func (g *Genre) SID() string                    { return g.sid }
func (g *Genre) Name() string                   { return g.name }
func (g *Genre) Description() string            { return g.description }
func (g *Genre) PersonalityProfileRef() *string { return g.personalityProfileRef }

func (g *Genre) SetID(id uint) {
	g.id = id
}

func (g *Genre) LinkPersonalityProfile(ref string) {
	g.personalityProfileRef = &ref
}
