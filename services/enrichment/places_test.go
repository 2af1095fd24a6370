package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesSource_Enabled(t *testing.T) {
	assert.False(t, (&PlacesSource{}).Enabled())
	assert.True(t, (&PlacesSource{APIKey: "k"}).Enabled())
}

func TestPlacesSource_RewritesPhotoReferences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/textsearch/json", r.URL.Path)
		assert.Equal(t, "Zaytoon New York City", r.URL.Query().Get("query"))
		assert.Equal(t, "k", r.URL.Query().Get("key"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"rating": 4.4,
				"price_level": 2,
				"photos": [
					{"photo_reference": "ref1"},
					{"photo_reference": "ref2"},
					{"photo_reference": "ref3"},
					{"photo_reference": "ref4"},
					{"photo_reference": "ref5"},
					{"photo_reference": "ref6"}
				]
			}]
		}`))
	}))
	defer srv.Close()

	src := &PlacesSource{APIKey: "k", BaseURL: srv.URL}
	outcome, err := src.Lookup(context.Background(), "Zaytoon", "New York City")
	require.NoError(t, err)

	assert.Equal(t, "places", outcome.SourceID)
	require.Len(t, outcome.Photos, maxPlacePhotos, "photo references are capped")
	assert.Contains(t, outcome.Photos[0], "/maps/api/place/photo?")
	assert.Contains(t, outcome.Photos[0], "photo_reference=ref1")
	require.NotNil(t, outcome.Rating)
	assert.Equal(t, 4.4, *outcome.Rating)
	require.NotNil(t, outcome.Price)
	assert.Equal(t, "$$", *outcome.Price)
}

func TestPlacesSource_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	src := &PlacesSource{APIKey: "k", BaseURL: srv.URL}
	outcome, err := src.Lookup(context.Background(), "Nowhere", "NYC")
	require.NoError(t, err)
	assert.Empty(t, outcome.Photos)
	assert.Nil(t, outcome.Rating)
}

func TestPlacesSource_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	src := &PlacesSource{APIKey: "k", BaseURL: srv.URL}
	_, err := src.Lookup(context.Background(), "Zaytoon", "NYC")
	assert.Error(t, err)
}

func TestPlacesSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	src := &PlacesSource{APIKey: "k", BaseURL: srv.URL}
	_, err := src.Lookup(context.Background(), "Zaytoon", "NYC")
	assert.Error(t, err)
}
