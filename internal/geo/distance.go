// Package geo provides the spherical geometry used to match users against regions.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
	EarthRadiusMeters = 6371000.0

	// MetersPerDegreeLat is a deliberately low figure for one degree of latitude.
	// The true value is about 111,195 m, so boxes built from it are slightly wider than needed.
	MetersPerDegreeLat = 111000.0
)

// DistanceMeters returns the great-circle distance between two points using the haversine formula.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a slightly outside [0, 1] for antipodal points
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// PointDistanceMeters is DistanceMeters for orb points (lon, lat order).
func PointDistanceMeters(from, to orb.Point) float64 {
	return DistanceMeters(from.Lat(), from.Lon(), to.Lat(), to.Lon())
}

// Within reports whether the two points are at most radiusMeters apart.
func Within(lat1, lon1, lat2, lon2, radiusMeters float64) bool {
	return DistanceMeters(lat1, lon1, lat2, lon2) <= radiusMeters
}

// ValidCoordinate reports whether lat/lon are finite and inside the WGS84 ranges.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
