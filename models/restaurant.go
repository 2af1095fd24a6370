package models

// Candidate is a named establishment proposed by the interpreter or
// extracted heuristically from its summary text. Name is the only required
// field; nil pointers mean "unknown", never a defaulted zero value.
type Candidate struct {
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	PriceLevel   *string  `json:"price_level,omitempty"`
	ETAMinutes   *int     `json:"eta_minutes,omitempty"`
	BusyStatus   *string  `json:"busy_status,omitempty"`
	TrendScore   *float64 `json:"trend_score,omitempty"`
	Influencers  []string `json:"influencers,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Deals        []string `json:"deals,omitempty"`
	OpeningSoon  *bool    `json:"opening_soon,omitempty"`
	MapQuery     string   `json:"map_query,omitempty"`
	MapURL       string   `json:"map_url,omitempty"`
}

// NormalizedRestaurant is the final merged entity returned to the caller.
// MapQuery and MapURL are always non-empty after map-field synthesis; Photos
// never contains a duplicate URL.
type NormalizedRestaurant struct {
	Name         string   `json:"name"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	PriceLevel   *string  `json:"price_level,omitempty"`
	ETAMinutes   *int     `json:"eta_minutes,omitempty"`
	BusyStatus   *string  `json:"busy_status,omitempty"`
	TrendScore   *float64 `json:"trend_score,omitempty"`
	Influencers  []string `json:"influencers,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Deals        []string `json:"deals,omitempty"`
	OpeningSoon  *bool    `json:"opening_soon,omitempty"`
	Photos       []string `json:"photos,omitempty"`
	MapQuery     string   `json:"map_query"`
	MapURL       string   `json:"map_url"`
}

// FromCandidate seeds a NormalizedRestaurant with the candidate's attributes.
func FromCandidate(c Candidate) NormalizedRestaurant {
	return NormalizedRestaurant{
		Name:         c.Name,
		Neighborhood: c.Neighborhood,
		Categories:   c.Categories,
		Rating:       c.Rating,
		PriceLevel:   c.PriceLevel,
		ETAMinutes:   c.ETAMinutes,
		BusyStatus:   c.BusyStatus,
		TrendScore:   c.TrendScore,
		Influencers:  c.Influencers,
		Specialties:  c.Specialties,
		Deals:        c.Deals,
		OpeningSoon:  c.OpeningSoon,
		MapQuery:     c.MapQuery,
		MapURL:       c.MapURL,
	}
}
