package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
)

func newGoogleTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad Request"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g-1","email":"ada@example.com","given_name":"Ada","family_name":"Lovelace"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGoogleClient(srv *httptest.Server) *GoogleOAuthClient {
	return NewGoogleOAuthClient(GoogleOAuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/identity/google/callback",
	}).WithEndpoints(oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/userinfo")
}

func TestGoogleOAuthClient_FetchProfile(t *testing.T) {
	client := newTestGoogleClient(newGoogleTestServer(t))

	profile, err := client.FetchProfile(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "google", profile.Provider)
	assert.Equal(t, "Ada Lovelace", profile.DisplayName())
}

func TestGoogleOAuthClient_InvalidGrantIsBadRequest(t *testing.T) {
	client := newTestGoogleClient(newGoogleTestServer(t))

	_, err := client.FetchProfile(context.Background(), "stale-code")
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeOAuthError))
}

func TestGoogleOAuthClient_UnreachableProviderIsBadGateway(t *testing.T) {
	srv := newGoogleTestServer(t)
	client := newTestGoogleClient(srv)
	srv.Close()

	_, err := client.FetchProfile(context.Background(), "good-code")
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestGoogleOAuthClient_AuthURL(t *testing.T) {
	client := newTestGoogleClient(newGoogleTestServer(t))

	withState, err := url.Parse(client.AuthURL("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", withState.Query().Get("state"))
	assert.Equal(t, "client", withState.Query().Get("client_id"))

	withoutState, err := url.Parse(client.AuthURL(""))
	require.NoError(t, err)
	_, present := withoutState.Query()["state"]
	assert.False(t, present)
}
