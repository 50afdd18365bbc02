package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrAIRequestFailed is returned when the AI completion call fails
	ErrAIRequestFailed = errors.New("AI completion request failed")

	// ErrEmptyCompletion is returned when the AI response carries no choices
	ErrEmptyCompletion = errors.New("AI response contained no choices")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogFetch is returned when the live catalog request fails
	ErrCatalogFetch = errors.New("catalog fetch failed")
)
