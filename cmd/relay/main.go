package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopsense/backend/config"
	"github.com/shopsense/backend/internal/delivery/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	r := relay.New(relay.Config{
		APIKey:      cfg.OpenAI.APIKey,
		UpstreamURL: cfg.Relay.UpstreamURL,
		Timeout:     cfg.Relay.Timeout,
	})

	addr := fmt.Sprintf(":%s", cfg.Relay.Port)
	log.Printf("Relay listening on %s (upstream: %s)", addr, cfg.Relay.UpstreamURL)

	if err := r.Router().Run(addr); err != nil {
		log.Fatalf("Failed to start relay: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
