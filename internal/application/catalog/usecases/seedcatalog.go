package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type GenreSeed struct {
	Name        string
	Description string
}

type SeedCatalogCommand struct {
	Genres   []GenreSeed
	Artworks []catalog.Draft
}

type SeedCatalogResult struct {
	GenresCreated   int
	ArtworksCreated int
	ArtworksSkipped int
}

// SeedCatalogUseCase loads fixtures through the regular upsert path, so
// running it twice creates nothing the second time.
type SeedCatalogUseCase struct {
	genreRepo catalog.GenreRepository
	upsert    *UpsertArtworkUseCase
	logger    logger.Interface
}

func NewSeedCatalogUseCase(genreRepo catalog.GenreRepository, upsert *UpsertArtworkUseCase, logger logger.Interface) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{genreRepo: genreRepo, upsert: upsert, logger: logger}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context, cmd SeedCatalogCommand) (*SeedCatalogResult, error) {
	result := &SeedCatalogResult{}

	for _, gs := range cmd.Genres {
		g, err := catalog.NewGenre(gs.Name, gs.Description)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		created, err := uc.genreRepo.CreateIfAbsent(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("failed to seed genre %q: %w", gs.Name, err)
		}
		if created {
			result.GenresCreated++
		}
	}

	for i, draft := range cmd.Artworks {
		res, err := uc.upsert.Execute(ctx, draft)
		if err != nil {
			uc.logger.Warnw("skipping catalog fixture", "index", i, "global_id", draft.GlobalID, "error", err)
			result.ArtworksSkipped++
			continue
		}
		if res.Created {
			result.ArtworksCreated++
		}
	}

	uc.logger.Infow("catalog seeded",
		"genres_created", result.GenresCreated,
		"artworks_created", result.ArtworksCreated,
		"artworks_skipped", result.ArtworksSkipped,
	)
	return result, nil
}
