package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSource_Products(t *testing.T) {
	source := NewStaticSource()

	products, err := source.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 10)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product ID %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Features)
	}
}

func TestStaticSource_ReturnsACopy(t *testing.T) {
	source := NewStaticSource()

	first, err := source.Products(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := source.Products(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name, "callers must not share backing storage")
}
