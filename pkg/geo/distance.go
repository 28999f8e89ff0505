// Package geo provides great-circle distance math for ranking nearby venues.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Distance returns the haversine distance in meters between two points
// given in decimal degrees. The result is always non-negative and zero
// for identical points.
func Distance(originLat, originLng, pointLat, pointLng float64) float64 {
	latA := toRadians(originLat)
	latB := toRadians(pointLat)
	dLat := toRadians(pointLat - originLat)
	dLng := toRadians(pointLng - originLng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	a := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
