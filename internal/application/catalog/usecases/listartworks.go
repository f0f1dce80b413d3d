package usecases

import (
	"context"
	"fmt"

	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type ListArtworksQuery struct {
	Page     int
	Limit    int
	Category string
	Source   string
}

type ListArtworksResult struct {
	Artworks []*catalog.Artwork
	Total    int64
	Page     int
	Limit    int
}

type ListArtworksUseCase struct {
	artworkRepo catalog.ArtworkRepository
	logger      logger.Interface
}

func NewListArtworksUseCase(artworkRepo catalog.ArtworkRepository, logger logger.Interface) *ListArtworksUseCase {
	return &ListArtworksUseCase{artworkRepo: artworkRepo, logger: logger}
}

func (uc *ListArtworksUseCase) Execute(ctx context.Context, q ListArtworksQuery) (*ListArtworksResult, error) {
	if q.Page < 1 {
		q.Page = constants.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = constants.DefaultPageSize
	}
	if q.Limit > constants.MaxPageSize {
		q.Limit = constants.MaxPageSize
	}

	filter := catalog.ListFilter{Page: q.Page, Limit: q.Limit}
	if q.Category != "" {
		c := catalog.Category(q.Category)
		if !c.Valid() {
			return nil, errors.NewFieldValidationError("Invalid category filter", []string{"category"}, q.Category)
		}
		filter.Category = c
	}
	if q.Source != "" {
		s := catalog.Source(q.Source)
		if !s.Valid() {
			return nil, errors.NewFieldValidationError("Invalid source filter", []string{"source"}, q.Source)
		}
		filter.Source = s
	}

	artworks, total, err := uc.artworkRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list artworks", "error", err)
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	return &ListArtworksResult{Artworks: artworks, Total: total, Page: q.Page, Limit: q.Limit}, nil
}
