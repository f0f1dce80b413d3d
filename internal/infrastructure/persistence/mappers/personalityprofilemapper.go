package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
)

// ProfileToEntity converts a persistence model to a profile. The stored
// entity type selects the subject variant.
func ProfileToEntity(m *models.PersonalityProfileModel) (*personality.Profile, error) {
	if m == nil {
		return nil, nil
	}
	subject, err := personality.ParseSubject(m.EntityType, m.EntityRef)
	if err != nil {
		return nil, fmt.Errorf("profile %s has an invalid subject: %w", m.SID, err)
	}

	raw := m.Scores.Data()
	scores := make(personality.Scores, len(raw))
	for trait, ts := range raw {
		scores[personality.Trait(trait)] = personality.TraitScore{Facets: ts.Facets, Total: ts.Total}
	}

	return personality.ReconstructProfile(personality.ProfileState{
		ID:         m.ID,
		SID:        m.SID,
		Subject:    subject,
		Scores:     scores,
		TotalScore: m.TotalScore,
		TestType:   personality.TestType(m.TestType),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}), nil
}

// ProfileToModel converts a profile to its persistence model
func ProfileToModel(p *personality.Profile) *models.PersonalityProfileModel {
	s := p.State()
	raw := make(map[string]models.TraitScoreJSON, len(s.Scores))
	for trait, ts := range s.Scores {
		raw[string(trait)] = models.TraitScoreJSON{Facets: ts.Facets, Total: ts.Total}
	}
	return &models.PersonalityProfileModel{
		ID:         s.ID,
		SID:        s.SID,
		EntityType: string(s.Subject.Kind()),
		EntityRef:  s.Subject.Ref(),
		Scores:     datatypes.NewJSONType(raw),
		TotalScore: s.TotalScore,
		TestType:   string(s.TestType),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
