package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopsense/backend/internal/domain"
)

const systemInstruction = "You are a helpful product recommendation assistant. " +
	"Always respond with a JSON array of product IDs, no other text."

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// RecommendationService orchestrates the recommendation flow: parse the
// intent, shortlist, consult the AI collaborator when one is configured,
// reconcile its answer against catalog ground truth, and fall back to the
// deterministic scorer on any failure. Recommend never fails the caller.
type RecommendationService struct {
	parser             *IntentParser
	scorer             *Scorer
	reasonBuilder      *ReasonBuilder
	chat               domain.ChatClient
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service. A nil chat
// client selects the pure fallback path; a nil cache disables caching.
func NewRecommendationService(
	chat domain.ChatClient,
	cache domain.CacheRepository,
	config RecommendationServiceConfig,
) *RecommendationService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &RecommendationService{
		parser:             NewIntentParser(config.EnableDebugLogging),
		scorer:             NewScorer(config.EnableDebugLogging),
		reasonBuilder:      NewReasonBuilder(),
		chat:               chat,
		cache:              cache,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Recommend ranks the catalog against the preference text.
// Flow: check cache -> fallback or AI path -> build reasons -> cache -> return
func (s *RecommendationService) Recommend(
	ctx context.Context,
	preference string,
	catalog []domain.Product,
) *domain.Recommendation {
	cacheKey := s.generateCacheKey(preference)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			return cached
		}
	}

	intent := s.parser.Parse(preference)
	result := s.recommend(ctx, preference, intent, catalog)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[RECOMMEND] cache set failed: %v", err)
		}
	}

	return result
}

func (s *RecommendationService) recommend(
	ctx context.Context,
	preference string,
	intent domain.Intent,
	catalog []domain.Product,
) *domain.Recommendation {
	if s.chat == nil {
		return s.buildResult(s.scorer.Recommend(catalog, intent), domain.SourceFallback, intent, "")
	}

	items, err := s.aiRecommend(ctx, preference, intent, catalog)
	if err != nil {
		log.Printf("[RECOMMEND] AI path failed, using fallback: %v", err)
		return s.buildResult(s.scorer.Recommend(catalog, intent), domain.SourceErrorAIFallback, intent, err.Error())
	}

	if len(items) == 0 {
		return s.buildResult(s.scorer.Recommend(catalog, intent), domain.SourceAIEmptyFallback, intent, "")
	}

	return s.buildResult(items, domain.SourceAI, intent, "")
}

// aiRecommend shortlists the catalog, asks the model for an ordered ID
// list, and reconciles the answer: unknown IDs are dropped, duplicates
// collapse to first occurrence, and a stated category constraint is
// enforced against catalog ground truth.
func (s *RecommendationService) aiRecommend(
	ctx context.Context,
	preference string,
	intent domain.Intent,
	catalog []domain.Product,
) ([]domain.Product, error) {
	shortlist := s.scorer.Shortlist(catalog, intent)
	prompt := buildPrompt(preference, intent, shortlist)

	raw, err := s.chat.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	ids := ExtractProductIDs(raw)
	if s.enableDebugLogging {
		log.Printf("[RECOMMEND] model returned %d ids: %v", len(ids), ids)
	}

	catalogByID := indexByID(catalog)
	shortlistByID := indexByID(shortlist)

	var items []domain.Product
	seen := make(map[int]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		resolved, inCatalog := catalogByID[id]
		if !inCatalog {
			// Fabricated ID: the catalog is ground truth.
			continue
		}
		seen[id] = true
		if fromShortlist, ok := shortlistByID[id]; ok {
			resolved = fromShortlist
		}
		items = append(items, resolved)
	}

	if intent.HasCategoryConstraint() {
		matching := filterProducts(items, func(p domain.Product) bool {
			return intent.MatchesDesiredCategory(p.Category)
		})
		if len(matching) == 0 && len(items) > 0 {
			// The model ignored the category constraint entirely; discard
			// its answer in favor of the best-rated in-category products.
			items = topRatedInCategory(catalog, intent, maxResults)
		} else {
			items = matching
		}
	}

	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return items, nil
}

func (s *RecommendationService) buildResult(
	items []domain.Product,
	source string,
	intent domain.Intent,
	errorMessage string,
) *domain.Recommendation {
	return &domain.Recommendation{
		Items:        items,
		Source:       source,
		ReasonsByID:  s.reasonBuilder.BuildReasons(items, intent),
		ErrorMessage: errorMessage,
	}
}

// generateCacheKey normalizes the preference text into a cache key.
// Format: "rec:{normalized_preference}"
func (s *RecommendationService) generateCacheKey(preference string) string {
	normalized := strings.ToLower(preference)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return fmt.Sprintf("rec:%s", strings.TrimSpace(normalized))
}

// buildPrompt renders the user preference and the shortlist table into the
// model prompt, asking for a JSON array of 3-5 product IDs.
func buildPrompt(preference string, intent domain.Intent, shortlist []domain.Product) string {
	var sb strings.Builder

	sb.WriteString("You are a product recommendation assistant. Based on the user's preference ")
	sb.WriteString("and the available products, recommend the best matching products.\n\n")
	fmt.Fprintf(&sb, "User Preference: %q\n\nAvailable Products:\n", preference)

	for _, p := range shortlist {
		fmt.Fprintf(&sb, "ID: %d, Name: %s, Category: %s, Price: $%s, Brand: %s, Features: %s, Rating: %s\n",
			p.ID, p.Name, p.Category,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.Brand,
			strings.Join(p.Features, ", "),
			strconv.FormatFloat(p.Rating, 'f', -1, 64))
	}

	sb.WriteString("\nPlease analyze the user's preference and recommend 3-5 products that best match ")
	sb.WriteString("their needs. Consider factors like price, category, features, and brand preferences.\n")
	if intent.HasCategoryConstraint() {
		sb.WriteString("The user asked for a specific product category; only recommend products from that category.\n")
	}
	sb.WriteString("\nRespond with ONLY a JSON array of product IDs that you recommend, in order of ")
	sb.WriteString("preference. Example: [3, 1, 7, 2]. If nothing fits, respond with [].")

	return sb.String()
}

func indexByID(products []domain.Product) map[int]domain.Product {
	index := make(map[int]domain.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}

// topRatedInCategory returns the best-rated products from the catalog
// restricted to the desired categories.
func topRatedInCategory(catalog []domain.Product, intent domain.Intent, limit int) []domain.Product {
	matching := filterProducts(catalog, func(p domain.Product) bool {
		return intent.MatchesDesiredCategory(p.Category)
	})
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Rating > matching[j].Rating
	})
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching
}
