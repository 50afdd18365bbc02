package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Relay   RelayConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds AI collaborator configuration. An empty APIKey is
// valid and selects the pure fallback recommendation path.
type OpenAIConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Model         string        `mapstructure:"model"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RatePerMinute int           `mapstructure:"rate_per_minute"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	Source       string        `mapstructure:"source"` // "static" or "live"
	LiveURL      string        `mapstructure:"live_url"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// CacheConfig holds recommendation cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RelayConfig holds configuration for the OpenAI relay server
type RelayConfig struct {
	Port        string        `mapstructure:"port"`
	UpstreamURL string        `mapstructure:"upstream_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopsense/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// OpenAI defaults. The api_key default registers the key with viper so
	// the environment override is picked up during Unmarshal.
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.timeout", "8s")
	v.SetDefault("openai.rate_per_minute", 20)

	// Catalog defaults
	v.SetDefault("catalog.source", "static")
	v.SetDefault("catalog.live_url", "https://dummyjson.com")
	v.SetDefault("catalog.fetch_timeout", "8s")

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")

	// Relay defaults
	v.SetDefault("relay.port", "8787")
	v.SetDefault("relay.upstream_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("relay.timeout", "30s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Source != "static" && config.Catalog.Source != "live" {
		return fmt.Errorf("catalog source must be 'static' or 'live', got: %s", config.Catalog.Source)
	}

	if config.Catalog.Source == "live" && config.Catalog.LiveURL == "" {
		return fmt.Errorf("catalog live URL is required when catalog source is 'live'")
	}

	if config.OpenAI.Timeout <= 0 {
		return fmt.Errorf("openai timeout must be positive, got: %s", config.OpenAI.Timeout)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	return nil
}
