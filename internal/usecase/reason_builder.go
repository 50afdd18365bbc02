package usecase

import (
	"fmt"
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

const (
	highRatingThreshold = 4.3
	maxReasonKeywords   = 3
)

// ReasonBuilder derives human-readable justification strings from the
// intent signals each recommended product satisfies.
type ReasonBuilder struct{}

// NewReasonBuilder creates a new reason builder
func NewReasonBuilder() *ReasonBuilder {
	return &ReasonBuilder{}
}

// BuildReasons maps each item's ID to its ordered reason list. An item
// with no applicable reason gets an empty list, never a missing entry.
func (b *ReasonBuilder) BuildReasons(items []domain.Product, intent domain.Intent) map[int][]string {
	reasons := make(map[int][]string, len(items))
	for _, item := range items {
		reasons[item.ID] = b.reasonsFor(item, intent)
	}
	return reasons
}

func (b *ReasonBuilder) reasonsFor(item domain.Product, intent domain.Intent) []string {
	reasons := []string{}

	if intent.HasMaxPrice && item.Price <= float64(intent.MaxPrice) {
		reasons = append(reasons, fmt.Sprintf("Under your budget ($%d)", intent.MaxPrice))
	}

	if intent.MatchesDesiredCategory(item.Category) {
		reasons = append(reasons, fmt.Sprintf("Matches requested category (%s)", item.Category))
	}

	if brandMatches(item.Brand, intent) {
		reasons = append(reasons, fmt.Sprintf("Brand matches (%s)", item.Brand))
	}

	if features := matchedFeatures(item, intent); len(features) > 0 {
		reasons = append(reasons, fmt.Sprintf("Has features: %s", strings.Join(features, ", ")))
	}

	if item.Rating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("High rating (%.1f/5)", item.Rating))
	}

	if terms := matchedTerms(item, intent); len(terms) > 0 {
		if len(terms) > maxReasonKeywords {
			terms = terms[:maxReasonKeywords]
		}
		reasons = append(reasons, fmt.Sprintf("Relevant keywords: %s", strings.Join(terms, ", ")))
	}

	return reasons
}
