package geocoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"outreach-api/internal/config"
)

// CensusClient calls the US Census onelineaddress geographies endpoint
type CensusClient struct {
	httpClient *http.Client
	baseURL    string
	benchmark  string
	vintage    string
	layers     []string
}

// NewCensusClient creates a client from geocoder configuration. A nil
// httpClient gets a fresh one with the configured timeout (none by default).
func NewCensusClient(cfg config.GeocoderConfig, httpClient *http.Client) *CensusClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &CensusClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		benchmark:  cfg.Benchmark,
		vintage:    cfg.Vintage,
		layers:     cfg.Layers,
	}
}

// BuildURL constructs the request URL for an address. Parameter order is
// fixed: address, benchmark, vintage, layers, format.
func (c *CensusClient) BuildURL(address string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("?address=")
	b.WriteString(encodeComponent(address))
	b.WriteString("&benchmark=")
	b.WriteString(encodeComponent(c.benchmark))
	b.WriteString("&vintage=")
	b.WriteString(encodeComponent(c.vintage))
	b.WriteString("&layers=")
	b.WriteString(encodeComponent(strings.Join(c.layers, ",")))
	b.WriteString("&format=json")
	return b.String()
}

// Lookup performs a single GET against the geocoder and returns its JSON
// body compacted. Non-2xx responses and non-JSON bodies are errors.
func (c *CensusClient) Lookup(ctx context.Context, address string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL(address), nil)
	if err != nil {
		return nil, NewGeocoderError("request", 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewGeocoderError("request", 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewGeocoderError("read", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewGeocoderError("request", resp.StatusCode, ErrUpstreamStatus)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, body); err != nil {
		return nil, NewGeocoderError("decode", 0, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
	}

	return json.RawMessage(compacted.Bytes()), nil
}

// encodeComponent escapes a query component the way browsers'
// encodeURIComponent does for spaces (%20 rather than +)
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
