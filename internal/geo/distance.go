// Package geo provides great-circle math for proximity ranking.
package geo

import "math"

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points, computed with the Haversine formula on a sphere of radius 6371 km.
// It is pure and symmetric, and returns 0 for identical points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// KmToMeters converts a radius for stores that take meters.
func KmToMeters(km float64) float64 {
	return km * 1000
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
