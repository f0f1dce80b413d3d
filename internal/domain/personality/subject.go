// Package personality holds OCEAN personality profiles. A profile describes
// exactly one subject: an account, an artwork or a genre.
package personality

import (
	"fmt"

	"github.com/artsoul-app/artsoul/internal/shared/id"
)

// EntityKind is the discriminator of a Subject
type EntityKind string

const (
	KindUser    EntityKind = "user"
	KindArtwork EntityKind = "artwork"
	KindGenre   EntityKind = "genre"
)

// Subject is the closed set of things a profile can describe.
type Subject interface {
	Kind() EntityKind
	Ref() string
	isSubject()
}

// UserSubject points at an account
type UserSubject struct{ AccountRef string }

// ArtworkSubject points at an artwork
type ArtworkSubject struct{ ArtworkRef string }

// GenreSubject points at a genre
type GenreSubject struct{ GenreRef string }

func (s UserSubject) Kind() EntityKind    { return KindUser }
func (s UserSubject) Ref() string         { return s.AccountRef }
func (UserSubject) isSubject()            {}
func (s ArtworkSubject) Kind() EntityKind { return KindArtwork }
func (s ArtworkSubject) Ref() string      { return s.ArtworkRef }
func (ArtworkSubject) isSubject()         {}
func (s GenreSubject) Kind() EntityKind   { return KindGenre }
func (s GenreSubject) Ref() string        { return s.GenreRef }
func (GenreSubject) isSubject()           {}

type subjectSpec struct {
	prefix string
	build  func(ref string) Subject
}

var subjectSpecs = map[EntityKind]subjectSpec{
	KindUser:    {id.PrefixAccount, func(ref string) Subject { return UserSubject{AccountRef: ref} }},
	KindArtwork: {id.PrefixArtwork, func(ref string) Subject { return ArtworkSubject{ArtworkRef: ref} }},
	KindGenre:   {id.PrefixGenre, func(ref string) Subject { return GenreSubject{GenreRef: ref} }},
}

// ParseKind validates an entity type name.
func ParseKind(kind string) (EntityKind, error) {
	k := EntityKind(kind)
	if _, ok := subjectSpecs[k]; !ok {
		return "", fmt.Errorf("entityType must be 'user', 'artwork' or 'genre'")
	}
	return k, nil
}

// ParseSubject builds the subject for an entity type and reference, checking
// that the reference is well formed for that type.
func ParseSubject(kind, ref string) (Subject, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	spec := subjectSpecs[k]
	if err := id.Validate(ref, spec.prefix); err != nil {
		return nil, fmt.Errorf("entityId is not a valid %s reference: %w", k, err)
	}
	return spec.build(ref), nil
}
