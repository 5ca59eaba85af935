package goldrate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

// Provider returns the current INR price of one troy ounce of gold.
type Provider interface {
	TroyOuncePrice(ctx context.Context) (decimal.Decimal, error)
}

// Client is the HTTP adapter for the external metals-rate API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) TroyOuncePrice(ctx context.Context) (decimal.Decimal, error) {
	if c.BaseURL == "" || c.APIKey == "" {
		return decimal.Zero, apperr.New(apperr.CodeConfig, "gold rate API URL or key not set")
	}

	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("base", "INR")
	q.Set("currencies", "XAU")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return decimal.Zero, apperr.Wrap(apperr.CodeUpstream, "build rate request", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return decimal.Zero, apperr.Wrap(apperr.CodeUpstream, "call rate provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, apperr.New(apperr.CodeUpstream, fmt.Sprintf("rate provider returned %d", resp.StatusCode))
	}

	var body struct {
		Success bool               `json:"success"`
		Rates   map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, apperr.Wrap(apperr.CodeUpstreamFormat, "decode rate response", err)
	}
	rate, ok := body.Rates["INRXAU"]
	if !body.Success || !ok {
		return decimal.Zero, apperr.New(apperr.CodeUpstreamFormat, "rate response missing success or INRXAU")
	}
	return decimal.NewFromFloat(rate), nil
}
