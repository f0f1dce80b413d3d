package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/application/catalog/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/infrastructure/upstream"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers/testutil"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/utils"
)

type mockListArtworksUC struct {
	query  usecases.ListArtworksQuery
	result *usecases.ListArtworksResult
	err    error
}

func (m *mockListArtworksUC) Execute(ctx context.Context, q usecases.ListArtworksQuery) (*usecases.ListArtworksResult, error) {
	m.query = q
	return m.result, m.err
}

type mockGetArtworkUC struct {
	result *catalog.Artwork
	err    error
}

func (m *mockGetArtworkUC) Execute(ctx context.Context, ref string) (*catalog.Artwork, error) {
	return m.result, m.err
}

type mockSearchGamesUC struct {
	term   string
	result json.RawMessage
	err    error
}

func (m *mockSearchGamesUC) Execute(ctx context.Context, term string) (json.RawMessage, error) {
	m.term = term
	return m.result, m.err
}

type mockMusicTokenUC struct {
	result *upstream.AppToken
	err    error
}

func (m *mockMusicTokenUC) Execute(ctx context.Context) (*upstream.AppToken, error) {
	return m.result, m.err
}

type catalogMocks struct {
	list   *mockListArtworksUC
	get    *mockGetArtworkUC
	search *mockSearchGamesUC
	music  *mockMusicTokenUC
}

func newCatalogHandler() (*CatalogHandler, *catalogMocks) {
	m := &catalogMocks{
		list:   &mockListArtworksUC{},
		get:    &mockGetArtworkUC{},
		search: &mockSearchGamesUC{},
		music:  &mockMusicTokenUC{},
	}
	return NewCatalogHandler(m.list, m.get, m.search, m.music, logger.NewNopLogger()), m
}

func testArtwork(t *testing.T, globalID string) *catalog.Artwork {
	t.Helper()
	a, err := catalog.NewArtwork(catalog.Draft{
		GlobalID:   globalID,
		OriginalID: "603",
		Source:     string(catalog.SourceTMDB),
		Title:      "The Matrix",
		Category:   string(catalog.CategoryFilm),
		ImageURL:   "https://image.tmdb.org/t/p/w500/matrix.jpg",
		Creator:    "Wachowski",
		Year:       "1999",
	})
	require.NoError(t, err)
	return a
}

func TestCatalogHandler_List(t *testing.T) {
	h, m := newCatalogHandler()
	m.list.result = &usecases.ListArtworksResult{
		Artworks: []*catalog.Artwork{testArtwork(t, "tmdb-603")},
		Total:    41,
		Page:     2,
		Limit:    20,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "category": "cine", "source": "TMDB"})
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListArtworksQuery{Page: 2, Limit: 20, Category: "cine", Source: "TMDB"}, m.list.query)

	var body struct {
		Data       []map[string]any     `json:"data"`
		Pagination utils.PaginationInfo `json:"pagination"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "tmdb-603", body.Data[0]["id"])
	assert.Equal(t, utils.PaginationInfo{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, body.Pagination)
}

func TestCatalogHandler_ListUnknownCategory(t *testing.T) {
	h, m := newCatalogHandler()
	m.list.err = errors.NewFieldValidationError("Invalid catalog filter", []string{"category"})

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog", nil)
	testutil.SetQueryParams(c, map[string]string{"category": "opera"})
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_Get(t *testing.T) {
	h, m := newCatalogHandler()
	m.get.err = errors.NewNotFoundError("Artwork not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/missing", nil)
	testutil.SetURLParam(c, "id", "missing")
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	m.get.result, m.get.err = testArtwork(t, "tmdb-603"), nil
	c, w = testutil.NewTestContext(http.MethodGet, "/catalog/tmdb-603", nil)
	testutil.SetURLParam(c, "id", "tmdb-603")
	h.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"The Matrix"`)
}

func TestCatalogHandler_SearchGamesPassesUpstreamJSON(t *testing.T) {
	h, m := newCatalogHandler()
	m.search.result = json.RawMessage(`[{"id":1942,"name":"The Witcher 3"}]`)

	c, w := testutil.NewTestContext(http.MethodPost, "/catalog/games/search", map[string]any{"search": "witcher"})
	h.SearchGames(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1942,"name":"The Witcher 3"}]`, w.Body.String())
	assert.Equal(t, "witcher", m.search.term)

	m.search.result, m.search.err = nil, errors.NewUpstreamFailureError("Game search failed", "status 500")
	c, w = testutil.NewTestContext(http.MethodPost, "/catalog/games/search", map[string]any{"search": "witcher"})
	h.SearchGames(c)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "status 500")
}

func TestCatalogHandler_MusicToken(t *testing.T) {
	h, m := newCatalogHandler()
	m.music.result = &upstream.AppToken{AccessToken: "BQD", TokenType: "Bearer", ExpiresIn: 3540}

	c, w := testutil.NewTestContext(http.MethodGet, "/catalog/music/token", nil)
	h.MusicToken(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access_token":"BQD","token_type":"Bearer","expires_in":3540}`, w.Body.String())
}
