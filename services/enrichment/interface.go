package enrichment

import (
	"context"
	"net/http"
	"time"

	"tea/models"
)

// Source is one independent external lookup that supplements a candidate
// with photos and attributes. Sources are queried in priority order and in
// isolation: one source failing never affects its siblings.
type Source interface {
	ID() string
	// Enabled reports whether the source has the credential it needs.
	// Disabled sources are skipped silently, not treated as failures.
	Enabled() bool
	Lookup(ctx context.Context, name, locality string) (models.EnrichmentOutcome, error)
}

// Shared HTTP client for all enrichment calls. Per-call deadlines come from
// the caller's context; this timeout is a backstop.
var httpClient = &http.Client{Timeout: 15 * time.Second}

// Config carries the enrichment credentials, passed explicitly at
// construction time.
type Config struct {
	GooglePlacesAPIKey string
	YelpAPIKey         string
	SerpAPIKey         string
}

// DefaultSources returns the three sources in their fixed priority order:
// places, then directory, then image-search fallback.
func DefaultSources(cfg Config) []Source {
	return []Source{
		&PlacesSource{APIKey: cfg.GooglePlacesAPIKey},
		&YelpSource{APIKey: cfg.YelpAPIKey},
		&ImageSearchSource{APIKey: cfg.SerpAPIKey},
	}
}
