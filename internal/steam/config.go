package steam

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Steam Web API endpoint
const DefaultBaseURL = "https://api.steampowered.com"

// Config contains configuration for the Steam Web API client.
//
// The API key is supplied by the application configuration or the
// STEAM_API_KEY environment variable; it is never hardcoded and never
// included in error messages or logs.
type Config struct {
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey authenticates every request. A client can be constructed
	// without one; requests then fail with a configuration error.
	APIKey string

	// Timeout for API requests. Default: 10 seconds.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}

// NewHTTPClient creates a configured HTTP client for this API
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
