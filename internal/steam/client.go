package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"steamgrip/internal/domain"
)

// API method paths. The Web API keeps the historical version segments stable.
const (
	resolveVanityPath   = "/ISteamUser/ResolveVanityURL/v0001/"
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v0002/"
	ownedGamesPath      = "/IPlayerService/GetOwnedGames/v0001/"
)

// vanityMatch is the success code ResolveVanityURL returns for a hit;
// anything else (42 in practice) means no profile has that name.
const vanityMatch = 1

// Client talks to the Steam Web API
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new Steam Web API client
func NewClient(cfg *Config) (*Client, error) {
	// Apply defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid steam client config: %w", err)
	}

	return &Client{
		config: cfg,
		client: cfg.NewHTTPClient(),
	}, nil
}

// resolveVanityResponse is the ResolveVanityURL envelope
type resolveVanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
		Message string `json:"message"`
	} `json:"response"`
}

// playerSummariesResponse is the GetPlayerSummaries envelope
type playerSummariesResponse struct {
	Response struct {
		Players []domain.Player `json:"players"`
	} `json:"response"`
}

// ownedGamesResponse is the GetOwnedGames envelope
type ownedGamesResponse struct {
	Response struct {
		GameCount int           `json:"game_count"`
		Games     []domain.Game `json:"games"`
	} `json:"response"`
}

// ResolveVanityURL maps a vanity name to a SteamID64. It returns an empty
// string without an error when no profile carries that name.
func (c *Client) ResolveVanityURL(ctx context.Context, vanityName string) (string, error) {
	var out resolveVanityResponse
	params := url.Values{"vanityurl": {vanityName}}
	if err := c.doGet(ctx, resolveVanityPath, params, &out); err != nil {
		return "", err
	}

	if out.Response.Success != vanityMatch {
		log.Debug("vanity name did not resolve", "vanity", vanityName, "message", out.Response.Message)
		return "", nil
	}

	return out.Response.SteamID, nil
}

// GetPlayerSummaries fetches profile summaries for up to 100 SteamID64s.
// Unknown IDs are simply absent from the result.
func (c *Client) GetPlayerSummaries(ctx context.Context, steamIDs ...string) ([]domain.Player, error) {
	var out playerSummariesResponse
	params := url.Values{"steamids": {strings.Join(steamIDs, ",")}}
	if err := c.doGet(ctx, playerSummariesPath, params, &out); err != nil {
		return nil, err
	}

	return out.Response.Players, nil
}

// GetOwnedGames fetches the owned-games list for a SteamID64. A private
// profile yields an empty list, not an error.
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]domain.Game, error) {
	var out ownedGamesResponse
	params := url.Values{}
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "1")
	params.Set("include_played_free_games", "1")
	if err := c.doGet(ctx, ownedGamesPath, params, &out); err != nil {
		return nil, err
	}

	log.Debug("fetched owned games", "steamid", steamID, "count", out.Response.GameCount)
	return out.Response.Games, nil
}

// doGet executes a GET request and decodes the JSON envelope. Requests are
// issued exactly once; there is no retry.
func (c *Client) doGet(ctx context.Context, path string, params url.Values, result interface{}) error {
	if c.config.APIKey == "" {
		return errors.New("steam api key not configured (set steam.api_key or STEAM_API_KEY)")
	}

	endpoint := c.buildURL(path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error embeds the full URL, key included; strip it
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("%s %s: %w", uerr.Op, path, uerr.Err)
		}
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("steam api returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// buildURL constructs a request URL with the key and query parameters
func (c *Client) buildURL(path string, params url.Values) string {
	u, _ := url.Parse(c.config.BaseURL + path)

	q := u.Query()
	q.Set("key", c.config.APIKey)
	q.Set("format", "json")
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String()
}
