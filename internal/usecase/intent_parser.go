package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Everything outside lowercase alphanumerics, whitespace and $ becomes whitespace
	termSeparatorRegex = regexp.MustCompile(`[^a-z0-9\s$]`)

	// "$500" style price ceiling, tried first
	dollarPriceRegex = regexp.MustCompile(`\$(\d{2,6})`)

	// "under 500" / "below 500" / "less than 500" / "<= 500", optional $
	wordPriceRegex = regexp.MustCompile(`(?:under|below|less than|<=)\s*\$?(\d{2,6})`)
)

// IntentParser converts free-text preferences into structured intents.
// Parsing is pure and total: absence of a signal yields an empty field,
// never an error.
type IntentParser struct {
	enableDebugLogging bool
}

// NewIntentParser creates a new intent parser
func NewIntentParser(enableDebugLogging bool) *IntentParser {
	return &IntentParser{enableDebugLogging: enableDebugLogging}
}

// Parse extracts keyword terms, a price ceiling, and category/brand/feature
// matches from the preference text using the fixed vocabulary tables.
func (p *IntentParser) Parse(text string) domain.Intent {
	lowered := strings.ToLower(text)

	intent := domain.Intent{Terms: extractTerms(lowered)}

	if price, ok := extractMaxPrice(lowered); ok {
		intent.MaxPrice = price
		intent.HasMaxPrice = true
	}

	for _, rule := range domain.CategoryRules {
		if rule.MatchesText(lowered) {
			intent.DesiredCategories = append(intent.DesiredCategories, rule)
		}
	}

	for _, brand := range domain.KnownBrands {
		if strings.Contains(lowered, brand) {
			intent.DesiredBrands = append(intent.DesiredBrands, brand)
		}
	}

	for _, feature := range domain.KnownFeatures {
		if strings.Contains(lowered, feature) {
			intent.DesiredFeatures = append(intent.DesiredFeatures, feature)
		}
	}

	if p.enableDebugLogging {
		log.Printf("[INTENT] %q | terms=%v maxPrice=%d(%v) categories=%d brands=%v features=%v",
			text, intent.Terms, intent.MaxPrice, intent.HasMaxPrice,
			len(intent.DesiredCategories), intent.DesiredBrands, intent.DesiredFeatures)
	}

	return intent
}

// extractTerms tokenizes the lowered text, dropping empties and deduping
// while preserving first-seen order.
func extractTerms(lowered string) []string {
	cleaned := termSeparatorRegex.ReplaceAllString(lowered, " ")

	seen := make(map[string]bool)
	var terms []string
	for _, word := range strings.Fields(cleaned) {
		if seen[word] {
			continue
		}
		seen[word] = true
		terms = append(terms, word)
	}
	return terms
}

// extractMaxPrice pulls a price ceiling out of the text. The explicit "$N"
// form wins over the "under N" form; first match wins within each.
func extractMaxPrice(lowered string) (int, bool) {
	if m := dollarPriceRegex.FindStringSubmatch(lowered); m != nil {
		if value, err := strconv.Atoi(m[1]); err == nil {
			return value, true
		}
	}
	if m := wordPriceRegex.FindStringSubmatch(lowered); m != nil {
		if value, err := strconv.Atoi(m[1]); err == nil {
			return value, true
		}
	}
	return 0, false
}
