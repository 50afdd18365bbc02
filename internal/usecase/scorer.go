package usecase

import (
	"log"
	"math"
	"sort"
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

// Fallback scoring weights. Contributions are applied independently and
// summed; individual terms are capped as below but the total is unbounded.
const (
	priceInBudgetBase  = 20.0
	priceBonusCap      = 10.0
	priceBonusDivisor  = 50.0
	overBudgetPenalty  = 15.0
	categoryMatchBonus = 25.0
	brandMatchBonus    = 15.0
	featureMatchBonus  = 8.0
	featureBonusCap    = 20.0
	ratingMultiplier   = 3.0
	keywordMatchBonus  = 2.0
	keywordBonusCap    = 10.0

	minKeywordLength = 3
	maxResults       = 5
)

// Shortlist (pre-AI) scoring weights, deliberately lighter than the
// fallback weights: the shortlist only bounds the prompt size.
const (
	shortlistTermWeight     = 1.5
	shortlistCategoryWeight = 3.0
	shortlistBrandWeight    = 2.0
	shortlistFeatureCap     = 3.0
	shortlistPriceBase      = 2.0
	shortlistPriceBonusCap  = 2.0
	shortlistPriceDivisor   = 200.0
	shortlistSize           = 20
)

// Scorer ranks catalog products against a parsed intent. All methods are
// pure; the catalog is never mutated.
type Scorer struct {
	enableDebugLogging bool
}

// NewScorer creates a new heuristic scorer
func NewScorer(enableDebugLogging bool) *Scorer {
	return &Scorer{enableDebugLogging: enableDebugLogging}
}

// Score computes the additive relevance score of one product against the
// intent. Higher is better; scores only order products within one pass.
func (s *Scorer) Score(product domain.Product, intent domain.Intent) float64 {
	score := 0.0

	if intent.HasMaxPrice {
		maxPrice := float64(intent.MaxPrice)
		if product.Price <= maxPrice {
			score += priceInBudgetBase + math.Min(priceBonusCap, (maxPrice-product.Price)/priceBonusDivisor)
		} else {
			score -= overBudgetPenalty
		}
	}

	if intent.MatchesDesiredCategory(product.Category) {
		score += categoryMatchBonus
	}

	if brandMatches(product.Brand, intent) {
		score += brandMatchBonus
	}

	score += math.Min(featureBonusCap, float64(len(matchedFeatures(product, intent)))*featureMatchBonus)
	score += product.Rating * ratingMultiplier
	score += math.Min(keywordBonusCap, float64(len(matchedTerms(product, intent)))*keywordMatchBonus)

	return score
}

// Recommend is the deterministic fallback pipeline: restrict the pool by
// each extracted signal, order the survivors by score, return the top 5.
// A filter set that matches nothing silently restores the full pool so the
// result is never empty for a non-empty catalog.
func (s *Scorer) Recommend(catalog []domain.Product, intent domain.Intent) []domain.Product {
	pool := s.filterBySignals(catalog, intent)

	scored := make([]domain.ScoredProduct, 0, len(pool))
	allZero := true
	for _, product := range pool {
		score := s.Score(product, intent)
		if score != 0 {
			allZero = false
		}
		if s.enableDebugLogging {
			log.Printf("[SCORE] %q | %.2f", product.Name, score)
		}
		scored = append(scored, domain.ScoredProduct{Product: product, Score: score})
	}

	if allZero {
		// No signal matched anything (ratings included): order by rating
		// instead so the caller still sees the best-rated products.
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Product.Rating > scored[j].Product.Rating
		})
	} else {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
	}

	return topProducts(scored, maxResults)
}

// Shortlist ranks the category-filtered pool with the lighter intent-score
// and returns the top 20 candidates for the model prompt.
func (s *Scorer) Shortlist(catalog []domain.Product, intent domain.Intent) []domain.Product {
	pool := s.prefilterByCategory(catalog, intent)

	scored := make([]domain.ScoredProduct, 0, len(pool))
	for _, product := range pool {
		scored = append(scored, domain.ScoredProduct{Product: product, Score: s.IntentScore(product, intent)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return topProducts(scored, shortlistSize)
}

// IntentScore is the shortlist scoring function, distinct from Score.
func (s *Scorer) IntentScore(product domain.Product, intent domain.Intent) float64 {
	score := 0.0

	score += shortlistTermWeight * float64(len(matchedTerms(product, intent)))

	if intent.MatchesDesiredCategory(product.Category) {
		score += shortlistCategoryWeight
	}
	if brandMatches(product.Brand, intent) {
		score += shortlistBrandWeight
	}

	score += math.Min(shortlistFeatureCap, float64(len(matchedFeatures(product, intent))))

	if intent.HasMaxPrice && product.Price <= float64(intent.MaxPrice) {
		score += shortlistPriceBase + math.Min(shortlistPriceBonusCap, (float64(intent.MaxPrice)-product.Price)/shortlistPriceDivisor)
	}

	score += product.Rating / 2

	return score
}

// filterBySignals narrows the pool by category first, then price ceiling,
// brand and features. The category step restores the pool on an empty
// result; an empty pool after the remaining steps restores the
// category-filtered pool so a stated category is never abandoned.
func (s *Scorer) filterBySignals(catalog []domain.Product, intent domain.Intent) []domain.Product {
	categoryPool := s.prefilterByCategory(catalog, intent)
	pool := categoryPool

	if intent.HasMaxPrice {
		maxPrice := float64(intent.MaxPrice)
		pool = filterProducts(pool, func(p domain.Product) bool {
			return p.Price <= maxPrice
		})
	}

	if len(intent.DesiredBrands) > 0 {
		pool = filterProducts(pool, func(p domain.Product) bool {
			return brandMatches(p.Brand, intent)
		})
	}

	if len(intent.DesiredFeatures) > 0 {
		pool = filterProducts(pool, func(p domain.Product) bool {
			return len(matchedFeatures(p, intent)) > 0
		})
	}

	if len(pool) == 0 {
		return categoryPool
	}
	return pool
}

// prefilterByCategory restricts the pool to products matching a desired
// category rule. Shared by the fallback and shortlist paths. An empty
// restriction silently falls back to the unrestricted pool.
func (s *Scorer) prefilterByCategory(pool []domain.Product, intent domain.Intent) []domain.Product {
	if !intent.HasCategoryConstraint() {
		return pool
	}
	filtered := filterProducts(pool, func(p domain.Product) bool {
		return intent.MatchesDesiredCategory(p.Category)
	})
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

func filterProducts(pool []domain.Product, keep func(domain.Product) bool) []domain.Product {
	var filtered []domain.Product
	for _, p := range pool {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func topProducts(scored []domain.ScoredProduct, limit int) []domain.Product {
	if len(scored) > limit {
		scored = scored[:limit]
	}
	products := make([]domain.Product, 0, len(scored))
	for _, sp := range scored {
		products = append(products, sp.Product)
	}
	return products
}

// brandMatches reports whether the product brand contains any desired
// brand substring.
func brandMatches(brand string, intent domain.Intent) bool {
	lowered := strings.ToLower(brand)
	for _, desired := range intent.DesiredBrands {
		if strings.Contains(lowered, desired) {
			return true
		}
	}
	return false
}

// matchedFeatures returns the desired feature phrases found as substrings
// of any product feature, in intent order.
func matchedFeatures(product domain.Product, intent domain.Intent) []string {
	var matched []string
	for _, desired := range intent.DesiredFeatures {
		for _, feature := range product.Features {
			if strings.Contains(strings.ToLower(feature), desired) {
				matched = append(matched, desired)
				break
			}
		}
	}
	return matched
}

// matchedTerms returns the intent terms of length >= 3 found as substrings
// of the product name + description, in term order.
func matchedTerms(product domain.Product, intent domain.Intent) []string {
	haystack := strings.ToLower(product.Name + " " + product.Description)
	var matched []string
	for _, term := range intent.Terms {
		if len(term) < minKeywordLength {
			continue
		}
		if strings.Contains(haystack, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
