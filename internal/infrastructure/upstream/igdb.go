package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
)

// igdbGameFields are the fields the client renders game cards and tags from.
const igdbGameFields = "name, cover.url, rating, summary, first_release_date, genres.name, " +
	"platforms.name, platforms.abbreviation, game_modes.name, involved_companies.company.name"

const igdbSearchLimit = 20

// IGDBClient proxies game searches to the IGDB v4 API.
type IGDBClient struct {
	baseURL    string
	clientID   string
	tokens     *TokenCache
	httpClient *http.Client
	logger     logger.Interface
}

func NewIGDBClient(baseURL, clientID string, tokens *TokenCache, timeout time.Duration, log logger.Interface) *IGDBClient {
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &IGDBClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// searchQuery builds the Apicalypse body. Quotes and backslashes in the term
// are escaped so it cannot terminate the search string.
func searchQuery(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(term)
	return fmt.Sprintf("fields %s;\nsearch \"%s\";\nlimit %d;\n", igdbGameFields, escaped, igdbSearchLimit)
}

// SearchGames returns the raw JSON array IGDB answers with.
func (c *IGDBClient) SearchGames(ctx context.Context, term string) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/games", bytes.NewBufferString(searchQuery(term)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call IGDB: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read IGDB response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("IGDB search failed", "status", resp.StatusCode, "body", truncate(string(body), 256))
		return nil, fmt.Errorf("unexpected IGDB status code: %d", resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("IGDB returned malformed JSON")
	}
	return json.RawMessage(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
