package openai

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"golang.org/x/time/rate"

	"github.com/shopsense/backend/internal/domain"
)

const (
	defaultModel         = "gpt-3.5-turbo"
	defaultTimeout       = 8 * time.Second
	defaultRatePerMinute = 20
	completionMaxTokens  = 150
	completionTemp       = 0.3
)

// Config holds settings for the chat completion client
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	Timeout       time.Duration
	RatePerMinute int
}

// Client calls an OpenAI-compatible chat completions endpoint, either the
// provider directly or the relay. Implements domain.ChatClient.
type Client struct {
	api     openai.Client
	model   string
	limiter *rate.Limiter
	debug   bool
}

// NewClient creates a new chat completion client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = defaultRatePerMinute
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:     openai.NewClient(opts...),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends a single completion attempt and returns the trimmed
// message content. No retries: callers retry the whole recommendation.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	if c.debug {
		log.Printf("[OPENAI] completion request: model=%s promptBytes=%d", c.model, len(prompt))
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Model:       shared.ChatModel(c.model),
		MaxTokens:   openai.Int(completionMaxTokens),
		Temperature: openai.Float(completionTemp),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAIRequestFailed, err)
	}

	if len(completion.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if c.debug {
		log.Printf("[OPENAI] completion response: %q", content)
	}
	return content, nil
}

var _ domain.ChatClient = (*Client)(nil)
