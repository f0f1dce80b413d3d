package usecases

import (
	"context"
	"encoding/json"

	"github.com/artsoul-app/artsoul/internal/infrastructure/upstream"
)

// UpsertObserver records how each catalog upsert ended
type UpsertObserver interface {
	RecordCatalogUpsert(outcome string)
}

// TextSanitizer strips markup from text that came from third parties
type TextSanitizer interface {
	StripTags(text string) string
}

// GameSearcher proxies the games catalog
type GameSearcher interface {
	SearchGames(ctx context.Context, term string) (json.RawMessage, error)
}

// AppTokenSource hands out application tokens for the music catalog
type AppTokenSource interface {
	AppToken(ctx context.Context) (*upstream.AppToken, error)
}
