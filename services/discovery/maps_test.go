package discovery

import (
	"net/url"
	"strings"
	"testing"

	"tea/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMapFields_SynthesizesMissingFields(t *testing.T) {
	r := EnsureMapFields(models.NormalizedRestaurant{Name: "Yemen Cafe"})

	assert.Equal(t, "Yemen Cafe New York City restaurant", r.MapQuery)
	assert.Contains(t, r.MapURL, "Yemen+Cafe")

	parsed, err := url.Parse(r.MapURL)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", parsed.Host)
	assert.Equal(t, r.MapQuery, parsed.Query().Get("query"))
}

func TestEnsureMapFields_UsesNeighborhood(t *testing.T) {
	r := EnsureMapFields(models.NormalizedRestaurant{Name: "Zaytoon", Neighborhood: "Brooklyn"})
	assert.Equal(t, "Zaytoon Brooklyn restaurant", r.MapQuery)
	assert.True(t, strings.HasPrefix(r.MapURL, mapSearchBase))
}

func TestEnsureMapFields_KeepsUpstreamValues(t *testing.T) {
	in := models.NormalizedRestaurant{
		Name:     "Lucali",
		MapQuery: "Lucali Carroll Gardens",
		MapURL:   "https://maps.example.com/lucali",
	}
	r := EnsureMapFields(in)
	assert.Equal(t, in.MapQuery, r.MapQuery)
	assert.Equal(t, in.MapURL, r.MapURL)
}

func TestEnsureMapFields_Idempotent(t *testing.T) {
	once := EnsureMapFields(models.NormalizedRestaurant{Name: "Di Fara", Neighborhood: "Midwood"})
	twice := EnsureMapFields(once)
	assert.Equal(t, once, twice)
}

func TestEnsureMapFields_AlwaysNonEmpty(t *testing.T) {
	for _, r := range []models.NormalizedRestaurant{
		{Name: "A"},
		{Name: "B", Neighborhood: "SoHo"},
		{Name: "C", MapQuery: "custom"},
	} {
		out := EnsureMapFields(r)
		assert.NotEmpty(t, out.MapQuery)
		assert.NotEmpty(t, out.MapURL)
	}
}
