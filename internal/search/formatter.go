package search

import (
	"math"
	"sort"

	"github.com/toyosu-dev/lunchnavi-backend/pkg/geo"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/places"
)

const (
	unknownName     = "名称不明"
	unknownVicinity = "住所不明"
)

// Format maps raw provider hits into candidates. Hits beyond a non-zero
// maxDistanceMeters are dropped. The returned bool mirrors the provider
// outcome: an empty candidate list after a successful call is not a failure.
func Format(hits []places.SearchHit, providerSucceeded bool, originLat, originLng float64, maxDistanceMeters int) ([]Candidate, bool) {
	if !providerSucceeded {
		return nil, false
	}

	candidates := make([]Candidate, 0, len(hits))
	for _, hit := range hits {
		distance := int(math.Round(geo.Distance(originLat, originLng, hit.Lat, hit.Lng)))
		if maxDistanceMeters > 0 && distance > maxDistanceMeters {
			continue
		}

		name := hit.Name
		if name == "" {
			name = unknownName
		}
		vicinity := hit.Vicinity
		if vicinity == "" {
			vicinity = unknownVicinity
		}

		candidates = append(candidates, Candidate{
			StoreID:        hit.PlaceID,
			Name:           name,
			Rating:         hit.Rating,
			RatingCount:    hit.UserRatingsTotal,
			DistanceMeters: distance,
			Vicinity:       vicinity,
		})
	}

	// Ties keep provider order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	return candidates, true
}
