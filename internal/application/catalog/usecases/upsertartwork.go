package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/metrics"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type UpsertArtworkResult struct {
	Artwork *catalog.Artwork
	Created bool
}

// UpsertArtworkUseCase finds an artwork by its global id or creates it.
// Concurrent callers with the same global id all end up with the same record.
type UpsertArtworkUseCase struct {
	artworkRepo catalog.ArtworkRepository
	sanitizer   TextSanitizer
	observer    UpsertObserver
	logger      logger.Interface
}

func NewUpsertArtworkUseCase(
	artworkRepo catalog.ArtworkRepository,
	sanitizer TextSanitizer,
	observer UpsertObserver,
	logger logger.Interface,
) *UpsertArtworkUseCase {
	return &UpsertArtworkUseCase{
		artworkRepo: artworkRepo,
		sanitizer:   sanitizer,
		observer:    observer,
		logger:      logger,
	}
}

func (uc *UpsertArtworkUseCase) Execute(ctx context.Context, draft catalog.Draft) (*UpsertArtworkResult, error) {
	globalID := strings.TrimSpace(draft.GlobalID)
	if globalID != "" {
		existing, err := uc.artworkRepo.GetByGlobalID(ctx, globalID)
		if err != nil {
			uc.logger.Errorw("failed to look up artwork", "global_id", globalID, "error", err)
			return nil, fmt.Errorf("failed to look up artwork: %w", err)
		}
		if existing != nil {
			uc.record(metrics.UpsertExisting)
			return &UpsertArtworkResult{Artwork: existing}, nil
		}
	}

	if uc.sanitizer != nil {
		draft.Description = strings.TrimSpace(uc.sanitizer.StripTags(draft.Description))
	}

	artwork, err := catalog.NewArtwork(draft)
	if err != nil {
		return nil, err
	}

	created, err := uc.artworkRepo.CreateIfAbsent(ctx, artwork)
	if err != nil {
		uc.logger.Errorw("failed to create artwork", "global_id", globalID, "error", err)
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}
	if created {
		uc.record(metrics.UpsertCreated)
		uc.logger.Infow("artwork created", "artwork_id", artwork.SID(), "global_id", artwork.GlobalID())
		return &UpsertArtworkResult{Artwork: artwork, Created: true}, nil
	}

	// another writer inserted the same global id between the lookup and the insert
	winner, err := uc.artworkRepo.GetCommittedByGlobalID(ctx, artwork.GlobalID())
	if err != nil {
		uc.logger.Errorw("failed to re-read artwork after conflict", "global_id", globalID, "error", err)
		return nil, fmt.Errorf("failed to re-read artwork after conflict: %w", err)
	}
	if winner == nil {
		uc.logger.Errorw("artwork missing after insert conflict", "global_id", globalID)
		return nil, fmt.Errorf("artwork %s missing after insert conflict", globalID)
	}

	uc.record(metrics.UpsertRaceResolved)
	uc.logger.Debugw("artwork insert race resolved", "artwork_id", winner.SID(), "global_id", globalID)
	return &UpsertArtworkResult{Artwork: winner}, nil
}

func (uc *UpsertArtworkUseCase) record(outcome string) {
	if uc.observer != nil {
		uc.observer.RecordCatalogUpsert(outcome)
	}
}
