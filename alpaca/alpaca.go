// Package alpaca reads the latest bars of US stocks from Alpaca's market data
// API.
package alpaca

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/etfnav"
)

// DefaultBaseURL is the market data host.
const DefaultBaseURL = "https://data.alpaca.markets"

const latestBarsPath = "/v2/stocks/bars/latest"

// Client is a market data client. Empty credentials are sent as is: the API
// will reject them.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	KeyID     string
	SecretKey string
}

// NewClient returns a client for the default host.
func NewClient(keyID, secretKey string) *Client {
	return &Client{
		HTTP:      http.DefaultClient,
		BaseURL:   DefaultBaseURL,
		KeyID:     keyID,
		SecretKey: secretKey,
	}
}

// latestBars is the response body of the latest bars endpoint.
type latestBars struct {
	Bars map[string]etfnav.Quote `json:"bars"`
}

// latestURL returns the address of the latest bars of symbols, the list is
// sent as one comma separated value.
func (c *Client) latestURL(symbols []string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{"symbols": {strings.Join(symbols, ",")}}
	return strings.TrimSuffix(base, "/") + latestBarsPath + "?" + q.Encode()
}

// LatestQuotes implements etfnav.QuoteFeed with a single request for all
// symbols. Symbols unknown to the feed are absent from the result.
func (c *Client) LatestQuotes(ctx context.Context, symbols []string) (map[string]etfnav.Quote, error) {
	if len(symbols) == 0 {
		return map[string]etfnav.Quote{}, nil
	}
	addr := c.latestURL(symbols)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("APCA-API-KEY-ID", c.KeyID)
	req.Header.Set("APCA-API-SECRET-KEY", c.SecretKey)
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	const op = "GET latest bars"
	resp, err := client.Do(req)
	if err != nil {
		return nil, &etfnav.TransportError{Collaborator: "alpaca", Op: op, Err: err}
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v (%d symbols)", req.Method, req.URL.Host, req.URL.Path, resp.Status, len(symbols))

	if resp.StatusCode != http.StatusOK {
		// the body carries the API's error message.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		var err error
		if m := strings.TrimSpace(string(msg)); m != "" {
			err = errors.New(m)
		}
		return nil, &etfnav.TransportError{Collaborator: "alpaca", Op: op, Status: resp.Status, Err: err}
	}

	var data latestBars
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &etfnav.TransportError{Collaborator: "alpaca", Op: op, Err: fmt.Errorf("cannot decode latest bars: %w", err)}
	}
	if data.Bars == nil {
		data.Bars = map[string]etfnav.Quote{}
	}
	return data.Bars, nil
}
