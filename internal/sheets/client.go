// Package sheets forwards submitted order fields to the spreadsheet-append
// API. The sheet is a convenience mirror for the shop owner; the order
// ledger remains the source of truth.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"zomio-storefront/internal/domain"
)

// Client posts order rows to the configured endpoint.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient builds a Client for the given append endpoint URL.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type appendRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Items   []string `json:"items"`
}

type appendResponse struct {
	Status string `json:"status"`
}

// AppendOrder forwards one order row. Any transport error or non-2xx reply
// surfaces as domain.ErrUpstream; there is no retry and no idempotency key,
// matching the endpoint's contract.
func (c *Client) AppendOrder(ctx context.Context, name, phone, address string, items []string) error {
	if items == nil {
		items = []string{}
	}
	body, err := json.Marshal(appendRequest{Name: name, Phone: phone, Address: address, Items: items})
	if err != nil {
		return fmt.Errorf("encode order row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: sheet api status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var out appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}
