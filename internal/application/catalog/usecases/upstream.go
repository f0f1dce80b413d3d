package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/artsoul-app/artsoul/internal/infrastructure/upstream"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// SearchGamesUseCase relays a search term to the games catalog. The
// upstream body is returned untouched.
type SearchGamesUseCase struct {
	searcher GameSearcher
	logger   logger.Interface
}

// NewSearchGamesUseCase accepts a nil searcher when the games catalog is not configured.
func NewSearchGamesUseCase(searcher GameSearcher, logger logger.Interface) *SearchGamesUseCase {
	return &SearchGamesUseCase{searcher: searcher, logger: logger}
}

func (uc *SearchGamesUseCase) Execute(ctx context.Context, term string) (json.RawMessage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.NewFieldValidationError("Search term is required", []string{"search"})
	}
	if uc.searcher == nil {
		return nil, errors.NewServiceUnavailableError("Games catalog is not configured")
	}

	body, err := uc.searcher.SearchGames(ctx, term)
	if err != nil {
		uc.logger.Warnw("games search failed", "term", term, "error", err)
		return nil, errors.NewUpstreamFailureError("Games catalog request failed", err.Error())
	}
	return body, nil
}

// MusicTokenUseCase hands the client an application token for the music catalog.
type MusicTokenUseCase struct {
	tokens AppTokenSource
	logger logger.Interface
}

// NewMusicTokenUseCase accepts a nil source when the music catalog is not configured.
func NewMusicTokenUseCase(tokens AppTokenSource, logger logger.Interface) *MusicTokenUseCase {
	return &MusicTokenUseCase{tokens: tokens, logger: logger}
}

func (uc *MusicTokenUseCase) Execute(ctx context.Context) (*upstream.AppToken, error) {
	if uc.tokens == nil {
		return nil, errors.NewServiceUnavailableError("Music catalog is not configured")
	}
	tok, err := uc.tokens.AppToken(ctx)
	if err != nil {
		uc.logger.Warnw("music token request failed", "error", err)
		return nil, errors.NewUpstreamFailureError("Music catalog token request failed", err.Error())
	}
	return tok, nil
}
