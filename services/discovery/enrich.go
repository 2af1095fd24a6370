package discovery

import (
	"context"
	"sync"

	"tea/models"
	"tea/services/enrichment"

	"go.uber.org/zap"
)

// enrichCandidate queries every enabled source for one candidate name. The
// sources have no data dependency on each other, so they run concurrently,
// each under its own timeout. A failing source contributes zero results and
// never aborts its siblings; disabled sources are skipped silently. All
// sources are always attempted even when an earlier one already produced
// photos, since different sources surface different photo angles.
func (s *DefaultDiscoveryService) enrichCandidate(ctx context.Context, name string) []models.EnrichmentOutcome {
	outcomes := make([]models.EnrichmentOutcome, len(s.Sources))

	var wg sync.WaitGroup
	for i, src := range s.Sources {
		if !src.Enabled() {
			continue
		}
		wg.Add(1)
		go func(i int, src enrichment.Source) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, s.Cfg.PerSourceTimeout)
			defer cancel()

			outcome, err := src.Lookup(callCtx, name, s.Cfg.Locality)
			if err != nil {
				s.Logger.Warn("Enrichment source failed",
					zap.String("source", src.ID()),
					zap.String("candidate", name),
					zap.Error(err))
				return
			}
			outcomes[i] = outcome
		}(i, src)
	}
	wg.Wait()

	// Preserve source-priority order, dropping empty slots.
	merged := outcomes[:0]
	for _, o := range outcomes {
		if o.SourceID != "" {
			merged = append(merged, o)
		}
	}
	return merged
}

// buildRestaurant merges a candidate with its enrichment outcomes into the
// final entity: photos concatenated in source-priority order then
// deduplicated, scalar attributes overlaid only where the candidate left
// them unset, map fields synthesized last.
func buildRestaurant(c models.Candidate, outcomes []models.EnrichmentOutcome) models.NormalizedRestaurant {
	r := models.FromCandidate(c)

	var photos []string
	for _, o := range outcomes {
		photos = append(photos, o.Photos...)
		if r.Rating == nil && o.Rating != nil {
			r.Rating = o.Rating
		}
		if r.PriceLevel == nil && o.Price != nil {
			r.PriceLevel = o.Price
		}
	}
	r.Photos = DedupeStrings(photos)

	return EnsureMapFields(r)
}
