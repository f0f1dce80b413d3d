package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/artsoul-app/artsoul/internal/domain/account"
	apperrors "github.com/artsoul-app/artsoul/internal/shared/errors"
)

const (
	providerGoogle        = "google"
	googleUserInfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
	defaultOAuthTimeout   = 10 * time.Second
	maxUserInfoBodyLength = 1 << 20
)

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Timeout      time.Duration
}

// GoogleOAuthClient runs the authorization code exchange and fetches the
// signed-in user's profile.
type GoogleOAuthClient struct {
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func NewGoogleOAuthClient(cfg GoogleOAuthConfig) *GoogleOAuthClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultOAuthTimeout
	}
	return &GoogleOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// WithEndpoints points the client at other token and profile URLs.
func (c *GoogleOAuthClient) WithEndpoints(endpoint oauth2.Endpoint, userInfoURL string) *GoogleOAuthClient {
	c.config.Endpoint = endpoint
	c.userInfoURL = userInfoURL
	return c
}

// AuthURL returns the consent page address. An empty state is not sent.
func (c *GoogleOAuthClient) AuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges the authorization code and loads the profile.
// A rejected code is a 400 oauth_error; other provider failures are 502.
func (c *GoogleOAuthClient) FetchProfile(ctx context.Context, code string) (*account.ExternalProfile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.ErrorCode == "invalid_grant" {
			return nil, apperrors.NewOAuthError(providerGoogle, "code exchange", http.StatusBadRequest,
				"authorization code is invalid or expired")
		}
		return nil, apperrors.NewOAuthError(providerGoogle, "code exchange", http.StatusBadGateway, err.Error())
	}

	info, err := c.userInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, apperrors.NewOAuthError(providerGoogle, "profile fetch", http.StatusBadGateway, err.Error())
	}

	return &account.ExternalProfile{
		Provider:   providerGoogle,
		ProviderID: info.ID,
		Email:      info.Email,
		Name:       info.Name,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
	}, nil
}

func (c *GoogleOAuthClient) userInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUserInfoBodyLength))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %w", err)
	}
	return &info, nil
}
