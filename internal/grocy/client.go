package grocy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIKeyHeader is the header Grocy reads the static API key from.
const APIKeyHeader = "GROCY-API-KEY"

const defaultTimeout = 30 * time.Second

// Source defines the Grocy reads the menu pipeline depends on.
type Source interface {
	Stock(ctx context.Context) ([]StockEntry, error)
	ProductGroups(ctx context.Context) (map[int]string, error)
	Locations(ctx context.Context) (map[int]string, error)
	Products(ctx context.Context) ([]Product, error)
	ProductLocations(ctx context.Context, productID int) ([]ProductLocation, error)
}

// Client provides access to the Grocy API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a Grocy client for baseURL (without the /api suffix).
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("grocy api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("grocy base url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse grocy url: %w", err)
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Stock returns the current stock entries with their nested products.
func (c *Client) Stock(ctx context.Context) ([]StockEntry, error) {
	var entries []StockEntry
	if err := c.getJSON(ctx, "stock", "/api/stock", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ProductGroups returns product group names keyed by id.
func (c *Client) ProductGroups(ctx context.Context) (map[int]string, error) {
	return c.namedObjects(ctx, "product groups", "/api/objects/product_groups")
}

// Locations returns location names keyed by id.
func (c *Client) Locations(ctx context.Context) (map[int]string, error) {
	return c.namedObjects(ctx, "locations", "/api/objects/locations")
}

// Products returns every product known to Grocy, stocked or not.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "products", "/api/objects/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductLocations returns the per-location stock breakdown of one product.
func (c *Client) ProductLocations(ctx context.Context, productID int) ([]ProductLocation, error) {
	var locations []ProductLocation
	path := "/api/stock/products/" + strconv.Itoa(productID) + "/locations"
	if err := c.getJSON(ctx, "product locations", path, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) namedObjects(ctx context.Context, endpoint, path string) (map[int]string, error) {
	var objects []NamedObject
	if err := c.getJSON(ctx, endpoint, path, &objects); err != nil {
		return nil, err
	}
	names := make(map[int]string, len(objects))
	for _, obj := range objects {
		names[int(obj.ID)] = obj.Name
	}
	return names, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("request %s (latency=%v): %w", endpoint, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
