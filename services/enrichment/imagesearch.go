package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tea/models"
)

const maxFallbackImages = 5

// ImageSearchSource is the generic image-search fallback. It runs a
// free-text image query so candidates without a Places or Yelp presence
// still get pictures.
type ImageSearchSource struct {
	APIKey  string
	BaseURL string
}

type imageSearchResponse struct {
	ImagesResults []struct {
		Original  string `json:"original"`
		Thumbnail string `json:"thumbnail"`
	} `json:"images_results"`
}

func (s *ImageSearchSource) ID() string { return "imagesearch" }

func (s *ImageSearchSource) Enabled() bool { return s.APIKey != "" }

func (s *ImageSearchSource) Lookup(ctx context.Context, name, locality string) (models.EnrichmentOutcome, error) {
	outcome := models.EnrichmentOutcome{SourceID: s.ID()}

	base := s.BaseURL
	if base == "" {
		base = "https://serpapi.com"
	}
	query := fmt.Sprintf("%s %s restaurant interior exterior dishes", name, locality)
	searchURL := fmt.Sprintf(
		"%s/search.json?engine=google_images&q=%s&num=%d&api_key=%s",
		base, url.QueryEscape(query), maxFallbackImages, url.QueryEscape(s.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return outcome, fmt.Errorf("build image search request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return outcome, fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return outcome, fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var search imageSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return outcome, fmt.Errorf("decode image search response: %w", err)
	}

	for _, img := range search.ImagesResults {
		if len(outcome.Photos) >= maxFallbackImages {
			break
		}
		switch {
		case img.Original != "":
			outcome.Photos = append(outcome.Photos, img.Original)
		case img.Thumbnail != "":
			outcome.Photos = append(outcome.Photos, img.Thumbnail)
		}
	}
	return outcome, nil
}
