package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

const (
	defaultBrand  = "Generic"
	defaultRating = 4.0
	maxFeatures   = 6
)

var descriptionFragmentRegex = regexp.MustCompile(`[.,;\-]`)

// NormalizeProduct converts an upstream catalog item into our domain
// Product, filling defaults for every missing field so downstream scoring
// never dereferences a hole.
func NormalizeProduct(item liveItem) domain.Product {
	brand := item.Brand
	if brand == "" {
		brand = defaultBrand
	}

	rating := defaultRating
	if item.Rating != nil {
		rating = *item.Rating
	}

	price := item.Price
	if price < 0 {
		price = 0
	}

	description := item.Description
	if description == "" {
		description = fmt.Sprintf("%s in category %s", item.Title, item.Category)
	}

	return domain.Product{
		ID:            item.ID,
		Name:          item.Title,
		Category:      capitalizeFirst(firstNonEmpty(item.Category, "Other")),
		Price:         price,
		Brand:         brand,
		Features:      deriveFeatures(item.Tags, item.Description),
		Rating:        rating,
		Description:   description,
		ImageURL:      firstImage(item.Images, item.Thumbnail),
		ExternalLinks: buildExternalLinks(item.Title, brand),
	}
}

// deriveFeatures takes the first 6 tags, else up to 6 description
// fragments split on punctuation, else two generic placeholders.
func deriveFeatures(tags []string, description string) []string {
	if len(tags) > 0 {
		if len(tags) > maxFeatures {
			tags = tags[:maxFeatures]
		}
		features := make([]string, len(tags))
		copy(features, tags)
		return features
	}

	var fragments []string
	for _, part := range descriptionFragmentRegex.Split(description, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fragments = append(fragments, part)
		if len(fragments) == maxFeatures {
			break
		}
	}
	if len(fragments) > 0 {
		return fragments
	}

	return []string{"Good value", "Popular choice"}
}

// buildExternalLinks produces retail search URLs from brand + title
func buildExternalLinks(title, brand string) *domain.ExternalLinks {
	query := url.QueryEscape(strings.TrimSpace(strings.Join(nonEmpty(brand, title), " ")))
	return &domain.ExternalLinks{
		Amazon:   fmt.Sprintf("https://www.amazon.in/s?k=%s", query),
		Flipkart: fmt.Sprintf("https://www.flipkart.com/search?q=%s", query),
		Google:   fmt.Sprintf("https://www.google.com/search?tbm=shop&q=%s", query),
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstImage(images []string, thumbnail string) string {
	if len(images) > 0 {
		return images[0]
	}
	return thumbnail
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values ...string) []string {
	var kept []string
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
