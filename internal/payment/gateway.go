package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperr "github.com/example/goldshop-gateway/pkg/errors"
)

// Gateway creates orders on the external payment gateway.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (GatewayOrder, error)
}

// GatewayOrder is the subset of the gateway's order object we use.
type GatewayOrder struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

const razorpayBaseURL = "https://api.razorpay.com"

// RazorpayClient talks to the Razorpay orders API with basic auth.
type RazorpayClient struct {
	BaseURL    string
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		BaseURL:    razorpayBaseURL,
		KeyID:      keyID,
		KeySecret:  keySecret,
		HTTPClient: http.DefaultClient,
	}
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (GatewayOrder, error) {
	payload, err := json.Marshal(map[string]any{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return GatewayOrder{}, apperr.Wrap(apperr.CodeGateway, "encode order request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return GatewayOrder{}, apperr.Wrap(apperr.CodeGateway, "build order request", err)
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return GatewayOrder{}, apperr.Wrap(apperr.CodeGateway, "call payment gateway", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return GatewayOrder{}, apperr.New(apperr.CodeGateway, fmt.Sprintf("gateway returned %d", resp.StatusCode))
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return GatewayOrder{}, apperr.Wrap(apperr.CodeGateway, "decode order response", err)
	}
	if order.ID == "" {
		return GatewayOrder{}, apperr.New(apperr.CodeGateway, "order response missing id")
	}
	return order, nil
}
