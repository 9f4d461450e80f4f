// Package client is the Go counterpart of the SPA state stores: a thin HTTP
// client for the product API plus a Store that mirrors the server-side
// collection with confirm-then-apply reconciliation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopdesk/product-api/internal/models"
)

// APIError is a failure envelope the server produced: the request completed
// but success was false. Anything else (network failure, malformed body) is
// reported as a plain wrapped error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateProductInput carries the full payload for a new product.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// UpdateProductInput marshals only non-nil fields, so absent fields stay
// untouched on the server.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", id), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/api/v1/products", in, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", id), in, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", id), nil, nil)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed response data: %w", err)
		}
	}

	return nil
}
