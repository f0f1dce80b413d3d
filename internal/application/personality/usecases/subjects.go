package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/domain/personality"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
)

// linkFunc records the profile on the subject's own record. nil when the
// subject keeps no link.
type linkFunc func(ctx context.Context, profileRef string) error

// subjectResolver checks that the subject exists and returns how to link it.
type subjectResolver func(ctx context.Context, ref string) (linkFunc, error)

// SubjectResolvers is the lookup table from entity kind to its store.
type SubjectResolvers struct {
	table map[personality.EntityKind]subjectResolver
}

func NewSubjectResolvers(
	accountRepo account.Repository,
	artworkRepo catalog.ArtworkRepository,
	genreRepo catalog.GenreRepository,
) *SubjectResolvers {
	return &SubjectResolvers{table: map[personality.EntityKind]subjectResolver{
		personality.KindUser: func(ctx context.Context, ref string) (linkFunc, error) {
			a, err := accountRepo.GetBySID(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("failed to get account: %w", err)
			}
			if a == nil {
				return nil, errors.NewNotFoundError("User not found", ref)
			}
			return func(ctx context.Context, profileRef string) error {
				a.LinkPersonalityProfile(profileRef)
				return accountRepo.Update(ctx, a)
			}, nil
		},
		personality.KindArtwork: func(ctx context.Context, ref string) (linkFunc, error) {
			art, err := artworkRepo.GetBySID(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("failed to get artwork: %w", err)
			}
			if art == nil {
				return nil, errors.NewNotFoundError("Artwork not found", ref)
			}
			return nil, nil
		},
		personality.KindGenre: func(ctx context.Context, ref string) (linkFunc, error) {
			g, err := genreRepo.GetBySID(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("failed to get genre: %w", err)
			}
			if g == nil {
				return nil, errors.NewNotFoundError("Genre not found", ref)
			}
			return func(ctx context.Context, profileRef string) error {
				g.LinkPersonalityProfile(profileRef)
				return genreRepo.Update(ctx, g)
			}, nil
		},
	}}
}

func (r *SubjectResolvers) resolve(ctx context.Context, subject personality.Subject) (linkFunc, error) {
	resolver, ok := r.table[subject.Kind()]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported entity type %q", subject.Kind()))
	}
	return resolver(ctx, subject.Ref())
}
