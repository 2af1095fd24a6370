package models

// DiscoveryRequest is the payload coming from the frontend into /api/tea.
type DiscoveryRequest struct {
	Query string `json:"query"`
}

// InterpretationResult is what the interpreter produced for one query:
// a natural-language summary plus zero or more named candidates. Built once
// per query, never mutated afterward.
type InterpretationResult struct {
	Answer     string      `json:"answer"`
	Candidates []Candidate `json:"restaurants"`
}

// EnrichmentOutcome is the per-source, per-candidate result. It only lives
// until the per-candidate merge.
type EnrichmentOutcome struct {
	SourceID string
	Photos   []string
	Rating   *float64
	Price    *string
}

// AggregatedResponse is the sole externally observable output of the
// pipeline.
type AggregatedResponse struct {
	Answer      string                 `json:"answer"`
	Restaurants []NormalizedRestaurant `json:"restaurants"`
}
