package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/id"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type GetArtworkUseCase struct {
	artworkRepo catalog.ArtworkRepository
	logger      logger.Interface
}

func NewGetArtworkUseCase(artworkRepo catalog.ArtworkRepository, logger logger.Interface) *GetArtworkUseCase {
	return &GetArtworkUseCase{artworkRepo: artworkRepo, logger: logger}
}

// Execute accepts either the internal reference or the global unique id.
func (uc *GetArtworkUseCase) Execute(ctx context.Context, ref string) (*catalog.Artwork, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.NewValidationError("artwork id is required")
	}

	var (
		artwork *catalog.Artwork
		err     error
	)
	if id.IsValid(ref, id.PrefixArtwork) {
		artwork, err = uc.artworkRepo.GetBySID(ctx, ref)
	}
	if err == nil && artwork == nil {
		artwork, err = uc.artworkRepo.GetByGlobalID(ctx, ref)
	}
	if err != nil {
		uc.logger.Errorw("failed to get artwork", "ref", ref, "error", err)
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	if artwork == nil {
		return nil, errors.NewNotFoundError("Artwork not found", ref)
	}
	return artwork, nil
}
