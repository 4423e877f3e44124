// README: Flight provider client; OAuth2 client-credentials token plus flight-offers search.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL points at the provider's test environment, the same
	// environment the original deployment searched against.
	DefaultBaseURL = "https://test.api.amadeus.com"

	requestTimeout = 15 * time.Second

	// tokenSlack refreshes the cached token slightly before the provider
	// would reject it.
	tokenSlack = 30 * time.Second
)

// Client talks to the flight provider. It holds the one piece of
// cross-request state the whole service has: a cached bearer token with its
// expiry, guarded by a mutex and refreshed lazily.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	httpc     *http.Client
	logger    *zap.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewClient(baseURL, apiKey, apiSecret string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpc:     &http.Client{Timeout: requestTimeout},
		logger:    logger,
	}
}

// SearchRequest is one flight-offers search.
type SearchRequest struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD
	TravelClass   string // e.g. ECONOMY
}

// Token returns a valid bearer token, exchanging client credentials only
// when the cached one is missing or about to expire.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Now().Add(tokenSlack).Before(c.tokenExp) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange: status %d", res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange: empty access token")
	}

	c.token = body.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	c.logger.Debug("flight token refreshed", zap.Time("expires", c.tokenExp))
	return c.token, nil
}

// invalidate drops the cached token so the next Token call re-fetches.
func (c *Client) invalidate() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// SearchOffers runs one flight-offers search and returns the raw offer
// list in provider order. Currency is fixed to USD, one adult. A 401 drops
// the cached token and retries once with a fresh one.
func (c *Client) SearchOffers(ctx context.Context, sr SearchRequest) ([]Offer, error) {
	offers, status, err := c.searchOffers(ctx, sr)
	if status == http.StatusUnauthorized {
		c.invalidate()
		offers, _, err = c.searchOffers(ctx, sr)
	}
	return offers, err
}

func (c *Client) searchOffers(ctx context.Context, sr SearchRequest) ([]Offer, int, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	q := url.Values{
		"originLocationCode":      {sr.Origin},
		"destinationLocationCode": {sr.Destination},
		"departureDate":           {sr.DepartureDate},
		"adults":                  {"1"},
		"travelClass":             {sr.TravelClass},
		"currencyCode":            {"USD"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("flight search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, res.StatusCode, fmt.Errorf("flight search: status %d", res.StatusCode)
	}

	var body offersResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, res.StatusCode, fmt.Errorf("flight search: %w", err)
	}
	return body.Data, res.StatusCode, nil
}
