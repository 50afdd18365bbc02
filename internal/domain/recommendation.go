package domain

// Source tags describe which path produced a recommendation.
const (
	SourceFallback        = "fallback"
	SourceAI              = "ai"
	SourceAIEmptyFallback = "ai_empty_fallback"
	SourceErrorAIFallback = "error_ai_fallback"
)

// Recommendation is the result of a single recommend call. It is built
// once per query and never persisted. Items contains 0-5 products with no
// duplicates; every product ID in ReasonsByID also appears in Items.
type Recommendation struct {
	Items        []Product        `json:"products"`
	Source       string           `json:"source"`
	ReasonsByID  map[int][]string `json:"reasons"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
}
