// README: Car rental provider client (RapidAPI resultsRequest); the one outbound call with a hard timeout.
package priceline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"go.uber.org/zap"
)

// searchTimeout is the provider-contract upper bound on one car search.
const searchTimeout = 30 * time.Second

// DefaultHost is the RapidAPI host the car search goes through.
const DefaultHost = "priceline-com-provider.p.rapidapi.com"

// Client talks to the car rental search provider.
type Client struct {
	host   string
	apiKey string
	httpc  *http.Client
	logger *zap.Logger
}

func NewClient(host, apiKey string, logger *zap.Logger) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:   host,
		apiKey: apiKey,
		httpc:  &http.Client{Timeout: searchTimeout},
		logger: logger,
	}
}

// SearchRequest is one car availability search. Dates use the provider's
// MM/DD/YYYY format, times HH:MM.
type SearchRequest struct {
	PickupCode  string
	DropoffCode string
	PickupDate  string
	DropoffDate string
	PickupTime  string
	DropoffTime string
}

// Record is one raw availability record. The payload has no stable schema,
// so it stays an untyped tree for the heuristic scanner; Key is the opaque
// identifier the provider keyed the record by.
type Record struct {
	Key  string
	Data map[string]any
}

type resultsResponse struct {
	GetCarResultsRequest struct {
		Results struct {
			ResultsList map[string]any `json:"results_list"`
		} `json:"results"`
	} `json:"getCarResultsRequest"`
}

// SearchCars runs one availability search and flattens the provider's
// keyed result map into records. Records are returned in sorted key order
// so downstream ranking is deterministic; non-object entries are skipped.
func (c *Client) SearchCars(ctx context.Context, sr SearchRequest) ([]Record, error) {
	q := url.Values{
		"pickup_date":          {sr.PickupDate},
		"dropoff_date":         {sr.DropoffDate},
		"pickup_time":          {sr.PickupTime},
		"dropoff_time":         {sr.DropoffTime},
		"pickup_airport_code":  {sr.PickupCode},
		"dropoff_airport_code": {sr.DropoffCode},
		"currency":             {"USD"},
		"drivers_age":          {"25"},
		"limit":                {"50"},
		"sort_order":           {"PRICE"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://"+c.host+"/v2/cars/resultsRequest?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("accept", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("car search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("car search: status %d", res.StatusCode)
	}

	var body resultsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("car search: %w", err)
	}

	list := body.GetCarResultsRequest.Results.ResultsList
	keys := make([]string, 0, len(list))
	for k := range list {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		data, ok := list[k].(map[string]any)
		if !ok {
			continue
		}
		records = append(records, Record{Key: k, Data: data})
	}
	return records, nil
}
