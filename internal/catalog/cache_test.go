package catalog

import (
	"testing"
	"time"

	"exoplanet-transit/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResponseCache_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewResponseCache(time.Minute)
	c.now = func() time.Time { return now }

	table := &model.CatalogTable{Header: []string{"pl_discmethod"}}
	c.Set("u", table)

	got, ok := c.Get("u")
	assert.True(t, ok)
	assert.Same(t, table, got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("u")
	assert.False(t, ok)
	assert.Equal(t, 1, c.evictExpired())
	assert.Equal(t, 0, c.evictExpired())
}

func TestResponseCache_NilSafe(t *testing.T) {
	var c *ResponseCache
	c.Set("u", &model.CatalogTable{})
	c.Clear()
	_, ok := c.Get("u")
	assert.False(t, ok)
}

func TestGetCache_DisabledByDefault(t *testing.T) {
	t.Setenv("ENABLE_ARCHIVE_CACHE", "")
	assert.Nil(t, GetCache())

	t.Setenv("ENABLE_ARCHIVE_CACHE", "true")
	t.Setenv("API_ENV", "production")
	assert.Nil(t, GetCache())
}

func TestGenerateCacheKey(t *testing.T) {
	a := GenerateCacheKey(DefaultURL)
	assert.Len(t, a, 64)
	assert.Equal(t, a, GenerateCacheKey(DefaultURL))
	assert.NotEqual(t, a, GenerateCacheKey(DefaultURL+"&format=csv"))
}
