package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopsense/backend/config"
	httpDelivery "github.com/shopsense/backend/internal/delivery/http"
	"github.com/shopsense/backend/internal/domain"
	"github.com/shopsense/backend/internal/infrastructure/cache"
	"github.com/shopsense/backend/internal/infrastructure/catalog"
	openaiClient "github.com/shopsense/backend/internal/infrastructure/openai"
	"github.com/shopsense/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug := cfg.Server.Environment == "development"

	log.Printf("Starting ShopSense Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog source: %s", cfg.Catalog.Source)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogSource := buildCatalogSource(cfg, debug)

	var chat domain.ChatClient
	if cfg.OpenAI.APIKey != "" {
		client := openaiClient.NewClient(openaiClient.Config{
			APIKey:        cfg.OpenAI.APIKey,
			BaseURL:       cfg.OpenAI.BaseURL,
			Model:         cfg.OpenAI.Model,
			Timeout:       cfg.OpenAI.Timeout,
			RatePerMinute: cfg.OpenAI.RatePerMinute,
		})
		client.SetDebug(debug)
		chat = client
		log.Printf("AI recommendations enabled: %s (model: %s, timeout: %s)",
			cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	} else {
		log.Printf("AI API key not configured; using fallback recommendations only")
	}

	// Initialize usecase layer
	recommender := usecase.NewRecommendationService(chat, memoryCache, usecase.RecommendationServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: debug,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommender, catalogSource)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCatalogSource selects the live catalog when configured and
// reachable, otherwise the built-in static catalog.
func buildCatalogSource(cfg *config.Config, debug bool) domain.CatalogSource {
	if cfg.Catalog.Source != "live" {
		return catalog.NewStaticSource()
	}

	client := catalog.NewLiveClient(cfg.Catalog.LiveURL, cfg.Catalog.FetchTimeout)
	client.SetDebug(debug)

	// Probe the live endpoint once at startup so a dead endpoint degrades
	// to the static catalog instead of failing every request.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
	defer cancel()
	if _, err := client.Products(ctx); err != nil {
		log.Printf("WARNING: live catalog unavailable, falling back to static: %v", err)
		return catalog.NewStaticSource()
	}

	log.Printf("Live catalog configured: %s", cfg.Catalog.LiveURL)
	return client
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
