package personality

import (
	"fmt"
	"strings"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// Trait is one of the five OCEAN dimensions
type Trait string

const (
	Openness          Trait = "openness"
	Conscientiousness Trait = "conscientiousness"
	Extraversion      Trait = "extraversion"
	Agreeableness     Trait = "agreeableness"
	Neuroticism       Trait = "neuroticism"
)

// Traits lists the dimensions in canonical order.
var Traits = []Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

// TraitScore holds facet scores and the trait total.
type TraitScore struct {
	Facets map[string]float64 `json:"facets,omitempty"`
	Total  float64            `json:"total"`
}

// Scores maps every trait to its score
type Scores map[Trait]TraitScore

// ParseScores converts a decoded JSON object into Scores. Every trait must be an
// object with a numeric total; all offending traits are reported together.
func ParseScores(raw map[string]any) (Scores, error) {
	if raw == nil {
		return nil, errors.NewFieldValidationError("scores is required", []string{"scores"})
	}

	scores := make(Scores, len(Traits))
	var fields, problems []string
	for _, trait := range Traits {
		obj, ok := raw[string(trait)].(map[string]any)
		if !ok {
			fields = append(fields, "scores."+string(trait))
			problems = append(problems, fmt.Sprintf("%s must be an object with at least a 'total'", trait))
			continue
		}
		total, ok := obj["total"].(float64)
		if !ok {
			fields = append(fields, "scores."+string(trait)+".total")
			problems = append(problems, fmt.Sprintf("%s.total must be a number", trait))
			continue
		}
		ts := TraitScore{Total: total, Facets: map[string]float64{}}
		for facet, v := range obj {
			if facet == "total" {
				continue
			}
			n, ok := v.(float64)
			if !ok {
				fields = append(fields, "scores."+string(trait)+"."+facet)
				problems = append(problems, fmt.Sprintf("%s.%s must be a number", trait, facet))
				continue
			}
			ts.Facets[facet] = n
		}
		scores[trait] = ts
	}

	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError("Invalid personality scores", fields, strings.Join(problems, "; "))
	}
	return scores, nil
}

// TestType is the questionnaire variant that produced the scores
type TestType string

const (
	TestQuick TestType = "quick"
	TestDeep  TestType = "deep"
)

// ParseTestType defaults to quick when empty.
func ParseTestType(s string) (TestType, error) {
	switch TestType(s) {
	case "":
		return TestQuick, nil
	case TestQuick, TestDeep:
		return TestType(s), nil
	default:
		return "", fmt.Errorf("testType must be 'quick' or 'deep'")
	}
}

// Profile is a live or soft-deleted OCEAN profile of a subject.
type Profile struct {
	id         uint
	sid        string
	subject    Subject
	scores     Scores
	totalScore *float64
	testType   TestType
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProfile(subject Subject, scores Scores, totalScore *float64, testType TestType) (*Profile, error) {
	if subject == nil {
		return nil, fmt.Errorf("subject is required")
	}
	sid, err := id.New(id.PrefixPersonalityProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile reference: %w", err)
	}
	now := time.Now().UTC()
	return &Profile{
		sid:        sid,
		subject:    subject,
		scores:     scores,
		totalScore: totalScore,
		testType:   testType,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ProfileState is the persisted form of a profile
type ProfileState struct {
	ID         uint
	SID        string
	Subject    Subject
	Scores     Scores
	TotalScore *float64
	TestType   TestType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructProfile(s ProfileState) *Profile {
	return &Profile{
		id:         s.ID,
		sid:        s.SID,
		subject:    s.Subject,
		scores:     s.Scores,
		totalScore: s.TotalScore,
		testType:   s.TestType,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}
}

func (p *Profile) State() ProfileState {
	return ProfileState{
		ID:         p.id,
		SID:        p.sid,
		Subject:    p.subject,
		Scores:     p.scores,
		TotalScore: p.totalScore,
		TestType:   p.testType,
		CreatedAt:  p.createdAt,
		UpdatedAt:  p.updatedAt,
	}
}

func (p *Profile) ID() uint             { return p.id }
func (p *Profile) SID() string          { return p.sid }
func (p *Profile) Subject() Subject     { return p.subject }
func (p *Profile) Scores() Scores       { return p.scores }
func (p *Profile) TotalScore() *float64 { return p.totalScore }
func (p *Profile) TestType() TestType   { return p.testType }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

func (p *Profile) SetID(id uint) {
	p.id = id
}

// Rescore replaces the scores of an existing profile. A nil total keeps the previous one.
func (p *Profile) Rescore(scores Scores, totalScore *float64, testType TestType) {
	p.scores = scores
	if totalScore != nil {
		p.totalScore = totalScore
	}
	p.testType = testType
	p.updatedAt = time.Now().UTC()
}
