package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// genericSubmitError is surfaced when a failure response carries no usable
// error body.
const genericSubmitError = "failed to create order"

// Client submits orders to the REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an order client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// PlaceOrder posts the order and returns the created order's id. On a
// failure response the server's error message is returned verbatim, or a
// generic fallback when the body carries none.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("encoding order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			return "", errors.New(genericSubmitError)
		}
		return "", errors.New(errBody.Error)
	}

	var created struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding order response: %w", err)
	}
	if created.ID == "" {
		return "", errors.New(genericSubmitError)
	}
	return created.ID, nil
}
