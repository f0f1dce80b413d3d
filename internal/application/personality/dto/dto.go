package dto

import (
	"time"

	"github.com/artsoul-app/artsoul/internal/domain/personality"
)

// SaveProfileRequest keeps scores loosely typed so that every malformed
// trait can be reported at once.
type SaveProfileRequest struct {
	EntityType string         `json:"entityType" binding:"required"`
	EntityID   string         `json:"entityId" binding:"required"`
	Scores     map[string]any `json:"scores" binding:"required"`
	TotalScore *float64       `json:"totalScore"`
	TestType   string         `json:"testType"`
}

type ProfileResponse struct {
	ID         string                 `json:"id"`
	EntityType personality.EntityKind `json:"entityType"`
	EntityID   string                 `json:"entityId"`
	Scores     personality.Scores     `json:"scores"`
	TotalScore *float64               `json:"totalScore,omitempty"`
	TestType   personality.TestType   `json:"testType"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

func ToProfileResponse(p *personality.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:         p.SID(),
		EntityType: p.Subject().Kind(),
		EntityID:   p.Subject().Ref(),
		Scores:     p.Scores(),
		TotalScore: p.TotalScore(),
		TestType:   p.TestType(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

func ToProfileResponses(profiles []*personality.Profile) []*ProfileResponse {
	out := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToProfileResponse(p))
	}
	return out
}
