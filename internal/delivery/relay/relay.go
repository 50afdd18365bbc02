package relay

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Config holds settings for the relay server
type Config struct {
	APIKey      string
	UpstreamURL string
	Timeout     time.Duration
}

// Relay forwards chat completion requests to the upstream provider with
// the server-held credential attached, returning status and body verbatim
// so browser clients never see the API key.
type Relay struct {
	apiKey      string
	upstreamURL string
	httpClient  *http.Client
}

// New creates a new relay
func New(cfg Config) *Relay {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cfg.APIKey == "" {
		log.Printf("[RELAY] WARNING: API key not set; upstream requests will fail")
	}

	return &Relay{
		apiKey:      cfg.APIKey,
		upstreamURL: cfg.UpstreamURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Router builds the gin engine for the relay
func (r *Relay) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(corsMiddleware())

	router.POST("/v1/chat/completions", r.forward)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

// forward proxies the request body to the upstream provider
func (r *Relay) forward(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "proxy_error", "message": err.Error()})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, r.upstreamURL, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "proxy_error", "message": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream_error", "message": err.Error()})
		return
	}
	defer resp.Body.Close()

	upstream, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream_error", "message": err.Error()})
		return
	}

	c.Data(resp.StatusCode, "application/json", upstream)
}

// corsMiddleware applies permissive cross-origin headers and answers
// preflight requests directly.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
