// Package amadeus integrates the Amadeus Self-Service travel APIs as
// agent-callable search tools: cheapest-date search, flight-offer search
// and airport lookup.
package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/faredesk/faredesk/log"
)

const (
	BaseURLTest       = "https://test.api.amadeus.com"
	BaseURLProduction = "https://api.amadeus.com"
)

// Client is an authenticated Amadeus API connection. Construct it once per
// process (see ClientSource); after construction it is safe for concurrent
// use, requests themselves being stateless.
type Client struct {
	APIKey     string
	APISecret  string
	BaseURL    string
	HTTPClient *http.Client

	tokenMu sync.Mutex
	token   *AuthToken
}

// AuthToken represents the OAuth2 token response
type AuthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Expiry      time.Time
}

// NewClient validates credentials and prepares a client. No network call
// happens here; authentication is deferred to the first request so that a
// credential problem is distinguishable from a provider outage.
func NewClient(apiKey, apiSecret string, isProduction bool) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := BaseURLTest
	if isProduction {
		baseURL = BaseURLProduction
	}

	return &Client{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Authenticate obtains a new access token via client credentials
func (c *Client) Authenticate(ctx context.Context) error {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.APIKey)
	data.Set("client_secret", c.APISecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/security/oauth2/token", bytes.NewBufferString(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	var token AuthToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return err
	}

	// Refresh 10 seconds early to avoid using a token that expires mid-request.
	token.Expiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - 10*time.Second)
	c.token = &token

	return nil
}

// ensureToken refreshes the access token when missing or expired. Guarded
// by a mutex: tools may fire concurrently and the token is the one piece
// of mutable client state.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token == nil || time.Now().After(c.token.Expiry) {
		if err := c.Authenticate(ctx); err != nil {
			return "", fmt.Errorf("failed to refresh token: %w", err)
		}
	}
	return c.token.AccessToken, nil
}

// getJSON performs an authenticated GET and decodes the response into out.
// Non-2xx responses become *APIError carrying the provider's diagnostics.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	accessToken, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	reqURL := c.BaseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "Amadeus API request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeAPIError(resp)
		log.Errorf(ctx, "Amadeus API returned %s for %s: %s", resp.Status, endpoint, apiErr.Description())
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
