package mappers

import (
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/persistence/models"
)

// ArtworkToEntity converts a persistence model to an artwork
func ArtworkToEntity(m *models.ArtworkModel) *catalog.Artwork {
	if m == nil {
		return nil
	}
	md := catalog.Metadata{}
	for k, v := range m.Metadata {
		md[k] = v
	}
	return catalog.ReconstructArtwork(catalog.ArtworkState{
		ID:          m.ID,
		SID:         m.SID,
		GlobalID:    m.GlobalID,
		OriginalID:  m.OriginalID,
		Source:      catalog.Source(m.Source),
		Title:       m.Title,
		Category:    catalog.Category(m.Category),
		ImageURL:    m.ImageURL,
		Creator:     m.Creator,
		Year:        m.Year,
		Description: m.Description,
		Rating:      m.Rating,
		Metadata:    md,
		CreatedAt:   m.CreatedAt,
	})
}

// ArtworksToEntities converts a slice of models, preserving order
func ArtworksToEntities(ms []*models.ArtworkModel) []*catalog.Artwork {
	out := make([]*catalog.Artwork, 0, len(ms))
	for _, m := range ms {
		out = append(out, ArtworkToEntity(m))
	}
	return out
}

// ArtworkToModel converts an artwork to its persistence model
func ArtworkToModel(a *catalog.Artwork) *models.ArtworkModel {
	s := a.State()
	md := make(map[string]any, len(s.Metadata))
	for k, v := range s.Metadata {
		md[k] = v
	}
	return &models.ArtworkModel{
		ID:          s.ID,
		SID:         s.SID,
		GlobalID:    s.GlobalID,
		OriginalID:  s.OriginalID,
		Source:      string(s.Source),
		Title:       s.Title,
		Category:    string(s.Category),
		ImageURL:    s.ImageURL,
		Creator:     s.Creator,
		Year:        s.Year,
		Description: s.Description,
		Rating:      s.Rating,
		Metadata:    md,
		CreatedAt:   s.CreatedAt,
	}
}

// GenreToEntity converts a persistence model to a genre
func GenreToEntity(m *models.GenreModel) *catalog.Genre {
	if m == nil {
		return nil
	}
	return catalog.ReconstructGenre(catalog.GenreState{
		ID:                    m.ID,
		SID:                   m.SID,
		Name:                  m.Name,
		Description:           m.Description,
		PersonalityProfileRef: m.PersonalityProfileSID,
		CreatedAt:             m.CreatedAt,
	})
}

// GenreToModel converts a genre to its persistence model
func GenreToModel(g *catalog.Genre) *models.GenreModel {
	s := g.State()
	return &models.GenreModel{
		ID:                    s.ID,
		SID:                   s.SID,
		Name:                  s.Name,
		Description:           s.Description,
		PersonalityProfileSID: s.PersonalityProfileRef,
		CreatedAt:             s.CreatedAt,
	}
}
