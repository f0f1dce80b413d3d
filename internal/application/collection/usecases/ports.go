package usecases

import (
	"context"

	catalogusecases "github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
)

// ArtworkResolver finds or creates the artwork a collection mutation refers to
type ArtworkResolver interface {
	Execute(ctx context.Context, draft catalog.Draft) (*catalogusecases.UpsertArtworkResult, error)
}
