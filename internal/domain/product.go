package domain

// ExternalLinks holds retail search deep links built from brand + name
type ExternalLinks struct {
	Amazon   string `json:"amazon,omitempty"`
	Flipkart string `json:"flipkart,omitempty"`
	Google   string `json:"google,omitempty"`
}

// Product represents a single catalog item. The recommendation engine
// treats products as read-only; IDs are unique within a catalog snapshot.
type Product struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Price         float64        `json:"price"`
	Brand         string         `json:"brand"`
	Features      []string       `json:"features"`
	Rating        float64        `json:"rating"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	ExternalLinks *ExternalLinks `json:"externalLinks,omitempty"`
}

// ScoredProduct pairs a product with its relevance score for one scoring
// pass. Scores are not comparable across different intents.
type ScoredProduct struct {
	Product Product
	Score   float64
}
