package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tea/models"
)

// YelpSource looks a candidate up in the Yelp Fusion business directory and
// pulls the primary image plus any secondary photo list from the first
// matching business.
type YelpSource struct {
	APIKey  string
	BaseURL string
}

type yelpSearchResponse struct {
	Businesses []struct {
		ImageURL string   `json:"image_url"`
		Photos   []string `json:"photos"`
		Rating   float64  `json:"rating"`
		Price    string   `json:"price"`
	} `json:"businesses"`
}

func (s *YelpSource) ID() string { return "yelp" }

func (s *YelpSource) Enabled() bool { return s.APIKey != "" }

func (s *YelpSource) Lookup(ctx context.Context, name, locality string) (models.EnrichmentOutcome, error) {
	outcome := models.EnrichmentOutcome{SourceID: s.ID()}

	base := s.BaseURL
	if base == "" {
		base = "https://api.yelp.com"
	}
	searchURL := fmt.Sprintf(
		"%s/v3/businesses/search?term=%s&location=%s&limit=1",
		base, url.QueryEscape(name), url.QueryEscape(locality),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return outcome, fmt.Errorf("build yelp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return outcome, fmt.Errorf("yelp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return outcome, fmt.Errorf("yelp returned status %d", resp.StatusCode)
	}

	var search yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return outcome, fmt.Errorf("decode yelp response: %w", err)
	}
	if len(search.Businesses) == 0 {
		return outcome, nil
	}

	biz := search.Businesses[0]
	if biz.ImageURL != "" {
		outcome.Photos = append(outcome.Photos, biz.ImageURL)
	}
	for _, photo := range biz.Photos {
		if photo != "" {
			outcome.Photos = append(outcome.Photos, photo)
		}
	}
	if biz.Rating > 0 {
		rating := biz.Rating
		outcome.Rating = &rating
	}
	if biz.Price != "" {
		price := biz.Price
		outcome.Price = &price
	}
	return outcome, nil
}
