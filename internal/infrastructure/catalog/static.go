package catalog

import (
	"context"

	"github.com/shopsense/backend/internal/domain"
)

// StaticSource serves the built-in demo catalog. Used when no live catalog
// is configured or the live fetch fails at startup.
type StaticSource struct{}

// NewStaticSource creates a static catalog source
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Products returns a copy of the demo catalog
func (s *StaticSource) Products(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, len(staticProducts))
	copy(products, staticProducts)
	return products, nil
}

var _ domain.CatalogSource = (*StaticSource)(nil)

var staticProducts = []domain.Product{
	{
		ID:          1,
		Name:        "iPhone 13",
		Category:    "Smartphone",
		Price:       699,
		Brand:       "Apple",
		Features:    []string{"5G", "A15 Bionic", "12MP Camera", "Face ID"},
		Rating:      4.5,
		Description: "Latest iPhone with advanced camera system and 5G connectivity",
	},
	{
		ID:          2,
		Name:        "Samsung Galaxy S21",
		Category:    "Smartphone",
		Price:       599,
		Brand:       "Samsung",
		Features:    []string{"5G", "Snapdragon 888", "64MP Camera", "Fingerprint"},
		Rating:      4.3,
		Description: "Premium Android smartphone with excellent camera quality",
	},
	{
		ID:          3,
		Name:        "Google Pixel 6",
		Category:    "Smartphone",
		Price:       499,
		Brand:       "Google",
		Features:    []string{"5G", "Google Tensor", "50MP Camera", "Android 12"},
		Rating:      4.4,
		Description: "Pure Android experience with Google's AI-powered camera",
	},
	{
		ID:          4,
		Name:        "OnePlus 9",
		Category:    "Smartphone",
		Price:       429,
		Brand:       "OnePlus",
		Features:    []string{"5G", "Snapdragon 888", "48MP Camera", "Fast Charging"},
		Rating:      4.2,
		Description: "Flagship killer with fast performance and charging",
	},
	{
		ID:          5,
		Name:        "MacBook Air M2",
		Category:    "Laptop",
		Price:       1199,
		Brand:       "Apple",
		Features:    []string{"M2 Chip", "13-inch", "8GB RAM", "256GB SSD"},
		Rating:      4.7,
		Description: "Ultra-thin laptop with Apple's latest M2 processor",
	},
	{
		ID:          6,
		Name:        "Dell XPS 13",
		Category:    "Laptop",
		Price:       999,
		Brand:       "Dell",
		Features:    []string{"Intel i7", "13-inch", "16GB RAM", "512GB SSD"},
		Rating:      4.4,
		Description: "Premium Windows laptop with excellent build quality",
	},
	{
		ID:          7,
		Name:        "Sony WH-1000XM4",
		Category:    "Headphones",
		Price:       349,
		Brand:       "Sony",
		Features:    []string{"Noise Cancelling", "30hr Battery", "Wireless", "Hi-Res Audio"},
		Rating:      4.6,
		Description: "Industry-leading noise cancelling wireless headphones",
	},
	{
		ID:          8,
		Name:        "AirPods Pro",
		Category:    "Headphones",
		Price:       249,
		Brand:       "Apple",
		Features:    []string{"Active Noise Cancellation", "Spatial Audio", "Wireless", "H1 Chip"},
		Rating:      4.5,
		Description: "Premium wireless earbuds with active noise cancellation",
	},
	{
		ID:          9,
		Name:        "iPad Air",
		Category:    "Tablet",
		Price:       599,
		Brand:       "Apple",
		Features:    []string{"M1 Chip", "10.9-inch", "Touch ID", "Apple Pencil Support"},
		Rating:      4.6,
		Description: "Powerful tablet with laptop-level performance",
	},
	{
		ID:          10,
		Name:        "Samsung Galaxy Tab S8",
		Category:    "Tablet",
		Price:       699,
		Brand:       "Samsung",
		Features:    []string{"Snapdragon 8 Gen 1", "11-inch", "S Pen", "5G"},
		Rating:      4.3,
		Description: "Premium Android tablet with S Pen for productivity",
	},
}
