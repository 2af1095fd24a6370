package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tea/models"
)

const maxPlacePhotos = 5

// PlacesSource queries the Google Places text-search API and rewrites photo
// references into fully qualified photo URLs.
type PlacesSource struct {
	APIKey string
	// BaseURL overrides the Google endpoint in tests.
	BaseURL string
}

// placesSearchResponse mirrors the subset of the Places text-search payload
// we use.
type placesSearchResponse struct {
	Results []struct {
		Rating     float64 `json:"rating"`
		PriceLevel int     `json:"price_level"`
		Photos     []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status string `json:"status"`
}

func (s *PlacesSource) ID() string { return "places" }

func (s *PlacesSource) Enabled() bool { return s.APIKey != "" }

func (s *PlacesSource) Lookup(ctx context.Context, name, locality string) (models.EnrichmentOutcome, error) {
	outcome := models.EnrichmentOutcome{SourceID: s.ID()}

	base := s.BaseURL
	if base == "" {
		base = "https://maps.googleapis.com"
	}
	searchURL := fmt.Sprintf(
		"%s/maps/api/place/textsearch/json?query=%s&key=%s",
		base, url.QueryEscape(name+" "+locality), url.QueryEscape(s.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return outcome, fmt.Errorf("build places request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return outcome, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return outcome, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var search placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return outcome, fmt.Errorf("decode places response: %w", err)
	}
	if len(search.Results) == 0 {
		return outcome, nil
	}

	first := search.Results[0]
	for i, photo := range first.Photos {
		if i >= maxPlacePhotos {
			break
		}
		if photo.PhotoReference == "" {
			continue
		}
		outcome.Photos = append(outcome.Photos, fmt.Sprintf(
			"%s/maps/api/place/photo?maxwidth=800&photo_reference=%s&key=%s",
			base, url.QueryEscape(photo.PhotoReference), url.QueryEscape(s.APIKey),
		))
	}
	if first.Rating > 0 {
		rating := first.Rating
		outcome.Rating = &rating
	}
	if first.PriceLevel > 0 {
		price := strings.Repeat("$", first.PriceLevel)
		outcome.Price = &price
	}
	return outcome, nil
}
