package discovery

import (
	"net/url"

	"tea/models"
)

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// EnsureMapFields guarantees the restaurant carries a non-empty map query
// and a resolvable map URL, deriving them from name and neighborhood when
// the upstream sources did not supply them. Pure, total and idempotent; no
// error path exists.
func EnsureMapFields(r models.NormalizedRestaurant) models.NormalizedRestaurant {
	if r.MapQuery == "" {
		locality := r.Neighborhood
		if locality == "" {
			locality = "New York City"
		}
		r.MapQuery = r.Name + " " + locality + " restaurant"
	}
	if r.MapURL == "" {
		r.MapURL = mapSearchBase + url.QueryEscape(r.MapQuery)
	}
	return r
}
