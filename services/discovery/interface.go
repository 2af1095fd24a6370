package discovery

import (
	"context"
	"errors"
	"time"

	"tea/models"
	"tea/services/enrichment"
	ai "tea/services/intelligence"

	"go.uber.org/zap"
)

// ErrEmptyQuery rejects requests whose query is empty after trimming. No
// backend call is made in that case.
var ErrEmptyQuery = errors.New("query must not be empty")

// DiscoveryService runs the full interpretation-and-enrichment pipeline for
// one query.
type DiscoveryService interface {
	Discover(ctx context.Context, query string) (*models.AggregatedResponse, error)
}

// Config tunes the pipeline. Passed explicitly at construction; the service
// never reads ambient process configuration.
type Config struct {
	// Locality is the city-wide scope string used to disambiguate
	// enrichment queries and synthesized map queries.
	Locality string
	// PerSourceTimeout bounds each enrichment source call so a hung
	// upstream cannot stall the whole request.
	PerSourceTimeout time.Duration
	// MaxConcurrentCandidates bounds candidate fan-out.
	MaxConcurrentCandidates int
	// CollapseDuplicateNames merges interpreter candidates that share a
	// normalized name into one card. Off by default.
	CollapseDuplicateNames bool
}

// DefaultDiscoveryService implements DiscoveryService.
type DefaultDiscoveryService struct {
	Interpreter ai.Interpreter
	Sources     []enrichment.Source
	Cfg         Config
	Logger      *zap.Logger
}

func NewDefaultDiscoveryService(interp ai.Interpreter, sources []enrichment.Source, cfg Config, logger *zap.Logger) *DefaultDiscoveryService {
	if cfg.Locality == "" {
		cfg.Locality = "New York City"
	}
	if cfg.PerSourceTimeout <= 0 {
		cfg.PerSourceTimeout = 5 * time.Second
	}
	if cfg.MaxConcurrentCandidates <= 0 {
		cfg.MaxConcurrentCandidates = 4
	}
	return &DefaultDiscoveryService{
		Interpreter: interp,
		Sources:     sources,
		Cfg:         cfg,
		Logger:      logger,
	}
}
