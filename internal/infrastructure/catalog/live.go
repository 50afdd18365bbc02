package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopsense/backend/internal/domain"
)

const productSelectFields = "title,price,brand,category,rating,tags,description,thumbnail,images"

// LiveClient fetches and normalizes products from a DummyJSON-compatible
// catalog endpoint.
type LiveClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewLiveClient creates a live catalog client
func NewLiveClient(baseURL string, timeout time.Duration) *LiveClient {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	// The public endpoint is a shared demo service; keep request volume low.
	limiter := rate.NewLimiter(rate.Limit(1), 2)

	return &LiveClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *LiveClient) SetDebug(debug bool) {
	c.debug = debug
}

// liveItem is the upstream product shape before normalization
type liveItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

type liveResponse struct {
	Products []liveItem `json:"products"`
}

// Products fetches the live catalog and maps every item into a Product
func (c *LiveClient) Products(ctx context.Context) ([]domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products?limit=100&select=%s", c.baseURL, productSelectFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ShopSense/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogFetch, resp.StatusCode, string(body))
	}

	var payload liveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(payload.Products))
	for _, item := range payload.Products {
		products = append(products, NormalizeProduct(item))
	}

	if c.debug {
		log.Printf("[CATALOG] fetched %d live products from %s", len(products), c.baseURL)
	}
	return products, nil
}

var _ domain.CatalogSource = (*LiveClient)(nil)
