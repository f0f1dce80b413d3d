package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/application/collection/dto"
	"github.com/artsoul-app/artsoul/internal/application/collection/usecases"
	"github.com/artsoul-app/artsoul/internal/domain/account"
	"github.com/artsoul-app/artsoul/internal/domain/catalog"
	"github.com/artsoul-app/artsoul/internal/interfaces/http/handlers/testutil"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type mockAddToCollectionUC struct {
	cmd    usecases.AddToCollectionCommand
	result *usecases.AddToCollectionResult
	err    error
}

func (m *mockAddToCollectionUC) Execute(ctx context.Context, cmd usecases.AddToCollectionCommand) (*usecases.AddToCollectionResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRemoveFromCollectionUC struct {
	cmd usecases.RemoveFromCollectionCommand
	err error
}

func (m *mockRemoveFromCollectionUC) Execute(ctx context.Context, cmd usecases.RemoveFromCollectionCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListCollectionUC struct {
	list   account.ListKind
	result []*catalog.Artwork
	err    error
}

func (m *mockListCollectionUC) Execute(ctx context.Context, accountRef string, list account.ListKind) ([]*catalog.Artwork, error) {
	m.list = list
	return m.result, m.err
}

const testAccountRef = "acc_0000000000aa"

func moviePayload() map[string]any {
	return map[string]any{
		"entity": map[string]any{
			"id":         "tmdb-603",
			"originalId": 603,
			"source":     "TMDB",
			"title":      "The Matrix",
			"category":   "cine",
			"imageUrl":   "https://image.tmdb.org/t/p/w500/matrix.jpg",
			"creator":    "Wachowski",
			"year":       1999,
		},
	}
}

func TestCollectionHandler_Add(t *testing.T) {
	tests := []struct {
		name        string
		added       bool
		wantStatus  int
		wantMessage string
	}{
		{name: "first add", added: true, wantStatus: http.StatusCreated, wantMessage: dto.MessageAdded},
		{name: "already a member", added: false, wantStatus: http.StatusOK, wantMessage: dto.MessageAlreadyPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add := &mockAddToCollectionUC{result: &usecases.AddToCollectionResult{
				Artwork: testArtwork(t, "tmdb-603"),
				Added:   tt.added,
			}}
			h := NewCollectionHandler(account.ListPending, add, &mockRemoveFromCollectionUC{}, &mockListCollectionUC{}, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/accounts/me/pending", moviePayload())
			testutil.SetAuthContext(c, testAccountRef)
			h.Add(c)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp dto.AddToCollectionResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "tmdb-603", resp.Artwork.ID)

			assert.Equal(t, account.ListPending, add.cmd.List)
			assert.Equal(t, testAccountRef, add.cmd.AccountRef)
			assert.Equal(t, "603", add.cmd.Artwork.OriginalID)
			assert.Equal(t, "1999", add.cmd.Artwork.Year)
		})
	}
}

func TestCollectionHandler_AddRequiresEntity(t *testing.T) {
	add := &mockAddToCollectionUC{}
	h := NewCollectionHandler(account.ListFavorites, add, &mockRemoveFromCollectionUC{}, &mockListCollectionUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts/me/favorites", map[string]any{})
	testutil.SetAuthContext(c, testAccountRef)
	h.Add(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body, err := testutil.ParseError(w)
	require.NoError(t, err)
	assert.Equal(t, []string{"entity"}, body.Fields)
}

func TestCollectionHandler_AddForwardsMissingFields(t *testing.T) {
	add := &mockAddToCollectionUC{err: errors.NewFieldValidationError("Missing required fields", []string{"title", "creator"})}
	h := NewCollectionHandler(account.ListFavorites, add, &mockRemoveFromCollectionUC{}, &mockListCollectionUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/accounts/me/favorites", map[string]any{"entity": map[string]any{"id": "x"}})
	testutil.SetAuthContext(c, testAccountRef)
	h.Add(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body, err := testutil.ParseError(w)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "creator"}, body.Fields)
}

func TestCollectionHandler_RemoveAndList(t *testing.T) {
	remove := &mockRemoveFromCollectionUC{}
	list := &mockListCollectionUC{result: []*catalog.Artwork{testArtwork(t, "tmdb-603")}}
	h := NewCollectionHandler(account.ListFavorites, &mockAddToCollectionUC{}, remove, list, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/accounts/me/favorites/art_0000000000bb", nil)
	testutil.SetAuthContext(c, testAccountRef)
	testutil.SetURLParam(c, "entityRef", "art_0000000000bb")
	h.Remove(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "art_0000000000bb", remove.cmd.ArtworkRef)
	assert.Equal(t, account.ListFavorites, remove.cmd.List)

	c, w = testutil.NewTestContext(http.MethodGet, "/accounts/me/favorites", nil)
	testutil.SetAuthContext(c, testAccountRef)
	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, account.ListFavorites, list.list)
	assert.Contains(t, w.Body.String(), `"id":"tmdb-603"`)
}
