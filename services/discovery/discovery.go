package discovery

import (
	"context"
	"strings"

	"tea/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Discover runs the pipeline for one query: interpret, fall back to name
// extraction when the interpreter produced no structured candidates, enrich
// every candidate with bounded concurrency, and synthesize map fields.
// The interpreter call strictly precedes all enrichment.
func (s *DefaultDiscoveryService) Discover(ctx context.Context, query string) (*models.AggregatedResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	interp, err := s.Interpreter.Interpret(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates := interp.Candidates
	if len(candidates) == 0 {
		candidates = candidatesFromText(interp.Answer)
	}
	if s.Cfg.CollapseDuplicateNames {
		candidates = Dedupe(candidates, func(c models.Candidate) string {
			return normalizeName(c.Name)
		})
	}

	s.Logger.Debug("Enriching candidates",
		zap.String("query", query),
		zap.Int("count", len(candidates)))

	// Each candidate is enriched independently; the output slice is
	// indexed by candidate position, so no locks are needed. Group errors
	// only ever carry context cancellation; enrichment failures degrade
	// inside enrichCandidate.
	restaurants := make([]models.NormalizedRestaurant, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Cfg.MaxConcurrentCandidates)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes := s.enrichCandidate(gctx, c.Name)
			restaurants[i] = buildRestaurant(c, outcomes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.AggregatedResponse{
		Answer:      interp.Answer,
		Restaurants: restaurants,
	}, nil
}

// candidatesFromText runs the name-extraction fallback. A query must always
// yield at least one result card, so an empty extraction substitutes the
// placeholder name.
func candidatesFromText(summaryText string) []models.Candidate {
	names := ExtractNames(summaryText)
	if len(names) == 0 {
		names = []string{PlaceholderName}
	}
	candidates := make([]models.Candidate, len(names))
	for i, name := range names {
		candidates[i] = models.Candidate{Name: name}
	}
	return candidates
}
