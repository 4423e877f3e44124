// README: Hotel provider client (RapidAPI properties list).
package bookingcom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 15 * time.Second

// Client talks to the hotel search provider through its RapidAPI host.
type Client struct {
	host   string
	apiKey string
	httpc  *http.Client
	logger *zap.Logger
}

func NewClient(host, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		host:   host,
		apiKey: apiKey,
		httpc:  &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

// SearchRequest is one hotel properties search. Guest and room counts are
// fixed upstream of this client (2 guests, 1 room).
type SearchRequest struct {
	DestID      string
	ArrivalDate string // YYYY-MM-DD
	DepartDate  string // YYYY-MM-DD
}

type propertiesResponse struct {
	Result []map[string]any `json:"result"`
}

// SearchProperties returns the provider's raw result records. Records stay
// untyped on purpose: field extraction with fallback chains happens in the
// hotel module, not here.
func (c *Client) SearchProperties(ctx context.Context, sr SearchRequest) ([]map[string]any, error) {
	q := url.Values{
		"offset":         {"0"},
		"arrival_date":   {sr.ArrivalDate},
		"departure_date": {sr.DepartDate},
		"guest_qty":      {"2"},
		"room_qty":       {"1"},
		"dest_ids":       {sr.DestID},
		"search_type":    {"city"},
		"locale":         {"en-us"},
		"currency_code":  {"USD"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://"+c.host+"/properties/list?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search: status %d", res.StatusCode)
	}

	var body propertiesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}
	return body.Result, nil
}
