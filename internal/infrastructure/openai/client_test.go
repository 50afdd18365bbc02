package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsense/backend/internal/domain"
)

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "  [1, 2]\n"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		RatePerMinute: 600,
	})

	content, err := client.Complete(context.Background(), "system", "prompt")
	require.NoError(t, err)

	assert.Equal(t, "[1, 2]", content, "content should be trimmed")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
}

func TestComplete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "bad-key",
		BaseURL:       server.URL,
		RatePerMinute: 600,
	})

	_, err := client.Complete(context.Background(), "system", "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAIRequestFailed)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		RatePerMinute: 600,
	})

	_, err := client.Complete(context.Background(), "system", "prompt")
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestComplete_CancelledContext(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", RatePerMinute: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "system", "prompt")
	assert.Error(t, err)
}
