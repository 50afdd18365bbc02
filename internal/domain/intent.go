package domain

import "strings"

// CategoryRule maps trigger vocabulary found in query text to a predicate
// over lowercased product categories. Rules are the dedup unit: a rule
// fires at most once no matter how many of its triggers appear.
type CategoryRule struct {
	Name          string   `json:"name"`
	Triggers      []string `json:"triggers"`
	CategoryTerms []string `json:"categoryTerms"`
}

// MatchesText reports whether any trigger appears as a substring of the
// lowercased query text.
func (r CategoryRule) MatchesText(lowered string) bool {
	for _, trigger := range r.Triggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether a product category satisfies the rule.
func (r CategoryRule) MatchesCategory(category string) bool {
	lowered := strings.ToLower(category)
	for _, term := range r.CategoryTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// CategoryRules is the fixed, ordered category vocabulary. Fired rules are
// appended to an intent in table order, not text order.
var CategoryRules = []CategoryRule{
	{
		Name:          "phones",
		Triggers:      []string{"phone", "phones", "smartphone", "smartphones", "mobile", "mobiles"},
		CategoryTerms: []string{"phone", "mobile"},
	},
	{
		Name:          "laptops",
		Triggers:      []string{"laptop", "laptops", "notebook", "notebooks", "ultrabook"},
		CategoryTerms: []string{"laptop", "notebook"},
	},
	{
		Name:          "headphones",
		Triggers:      []string{"headphone", "headphones", "earbuds", "earbud", "earphone", "earphones", "buds"},
		CategoryTerms: []string{"head", "ear"},
	},
	{
		Name:          "tablets",
		Triggers:      []string{"tablet", "tablets", "ipad", "ipads"},
		CategoryTerms: []string{"tablet", "ipad"},
	},
}

// KnownBrands is the fixed brand vocabulary, matched as substrings of the
// lowercased query text.
var KnownBrands = []string{"apple", "samsung", "google", "oneplus", "dell", "sony"}

// KnownFeatures is the fixed feature-phrase vocabulary.
var KnownFeatures = []string{"5g", "camera", "wireless", "noise cancelling", "noise-cancelling", "fast charging", "bluetooth"}

// Intent is the structured form of a free-text preference. It is a pure
// function of the input text and the vocabulary tables above.
type Intent struct {
	Terms             []string
	MaxPrice          int
	HasMaxPrice       bool
	DesiredCategories []CategoryRule
	DesiredBrands     []string
	DesiredFeatures   []string
}

// HasCategoryConstraint reports whether the query named any category.
func (i Intent) HasCategoryConstraint() bool {
	return len(i.DesiredCategories) > 0
}

// MatchesDesiredCategory reports whether any fired category rule accepts
// the given product category.
func (i Intent) MatchesDesiredCategory(category string) bool {
	for _, rule := range i.DesiredCategories {
		if rule.MatchesCategory(category) {
			return true
		}
	}
	return false
}
