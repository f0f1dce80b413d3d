package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

type tokenServer struct {
	*httptest.Server
	calls    atomic.Int32
	lastAuth atomic.Value
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := ts.calls.Add(1)
		ts.lastAuth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-" + string(rune('0'+n)),
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestTokenCacheReusesUntilMargin(t *testing.T) {
	ts := newTokenServer(t)
	now := time.Now()
	cache := NewTokenCache(TokenCacheConfig{
		Name:         "igdb",
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     ts.URL,
	}, logger.NewNopLogger()).WithClock(func() time.Time { return now })

	tok, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok.AccessToken)

	now = now.Add(30 * time.Minute)
	tok, err = cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok.AccessToken)
	assert.EqualValues(t, 1, ts.calls.Load())

	// inside the final minute of validity the token counts as stale
	now = now.Add(29*time.Minute + 30*time.Second)
	tok, err = cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok.AccessToken)
	assert.EqualValues(t, 2, ts.calls.Load())
}

func TestTokenCacheConcurrentCallersShareRefresh(t *testing.T) {
	ts := newTokenServer(t)
	cache := NewTokenCache(TokenCacheConfig{
		Name:         "igdb",
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     ts.URL,
	}, logger.NewNopLogger())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := cache.Token(context.Background())
			assert.NoError(t, err)
			if assert.NotNil(t, tok) {
				assert.Equal(t, "token-1", tok.AccessToken)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ts.calls.Load())
}

func TestTokenCacheBasicAuth(t *testing.T) {
	ts := newTokenServer(t)
	cache := NewTokenCache(TokenCacheConfig{
		Name:                "spotify",
		ClientID:            "id",
		ClientSecret:        "secret",
		TokenURL:            ts.URL,
		CredentialsInHeader: true,
	}, logger.NewNopLogger())

	app, err := cache.AppToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", app.AccessToken)
	assert.Equal(t, "Bearer", app.TokenType)
	assert.InDelta(t, 3600, app.ExpiresIn, 5)
	assert.Contains(t, ts.lastAuth.Load(), "Basic ")
}

func TestTokenCacheUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_client"}`)
	}))
	defer srv.Close()

	cache := NewTokenCache(TokenCacheConfig{Name: "igdb", ClientID: "id", ClientSecret: "bad", TokenURL: srv.URL},
		logger.NewNopLogger())
	_, err := cache.Token(context.Background())
	assert.Error(t, err)
}

func TestSearchQueryEscapesTerm(t *testing.T) {
	q := searchQuery(`Zelda "Breath"`)
	assert.Contains(t, q, `search "Zelda \"Breath\"";`)
	assert.Contains(t, q, "limit 20;")
	assert.Contains(t, q, "fields name, cover.url")
}

func TestIGDBSearchGames(t *testing.T) {
	ts := newTokenServer(t)

	var gotBody, gotClientID, gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotClientID = r.Header.Get("Client-ID")
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/games" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `[{"id":1,"name":"Celeste"}]`)
	}))
	defer api.Close()

	tokens := NewTokenCache(TokenCacheConfig{Name: "igdb", ClientID: "cid", ClientSecret: "s", TokenURL: ts.URL},
		logger.NewNopLogger())
	client := NewIGDBClient(api.URL+"/", "cid", tokens, time.Second, logger.NewNopLogger())

	raw, err := client.SearchGames(context.Background(), "Celeste")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Celeste"}]`, string(raw))
	assert.Contains(t, gotBody, `search "Celeste";`)
	assert.Equal(t, "cid", gotClientID)
	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestIGDBSearchGamesUpstreamError(t *testing.T) {
	ts := newTokenServer(t)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer api.Close()

	tokens := NewTokenCache(TokenCacheConfig{Name: "igdb", ClientID: "cid", ClientSecret: "s", TokenURL: ts.URL},
		logger.NewNopLogger())
	client := NewIGDBClient(api.URL, "cid", tokens, time.Second, logger.NewNopLogger())

	_, err := client.SearchGames(context.Background(), "Celeste")
	require.Error(t, err)

	// the rejected token is dropped and the next search fetches a new one
	_, _ = client.SearchGames(context.Background(), "Celeste")
	assert.EqualValues(t, 2, ts.calls.Load())
}
