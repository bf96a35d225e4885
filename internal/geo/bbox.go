package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Box is an axis-aligned latitude/longitude rectangle.
//
// A box that crosses the antimeridian has MinLon > MaxLon and covers
// [MinLon, 180] together with [-180, MaxLon].
type Box struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBox returns a rectangle that contains every point within radiusMeters of (lat, lon).
// The result stays inside valid coordinate ranges and never contains NaN or Inf.
func BoundingBox(lat, lon, radiusMeters float64) Box {
	radiusMeters = math.Max(0, radiusMeters)

	// angular radius measured with the short degree, so slightly wider than the true circle
	dLat := radiusMeters / MetersPerDegreeLat

	box := Box{
		MinLat: clamp(lat-dLat, -90, 90),
		MaxLat: clamp(lat+dLat, -90, 90),
		MinLon: -180,
		MaxLon: 180,
	}

	// a circle touching a pole covers every longitude
	if lat+dLat >= 90 || lat-dLat <= -90 {
		return box
	}

	// widest longitude reached by the circle; |lat|+dLat < 90 keeps the ratio below 1
	ratio := math.Sin(toRadians(dLat)) / math.Cos(toRadians(lat))
	dLon := math.Asin(math.Min(1, ratio)) * 180 / math.Pi
	if dLon >= 180 {
		return box
	}

	box.MinLon = lon - dLon
	box.MaxLon = lon + dLon
	if box.MinLon <= -180 {
		box.MinLon += 360
	}
	if box.MaxLon >= 180 {
		box.MaxLon -= 360
	}

	return box
}

// CrossesAntimeridian reports whether the box wraps from 180 to -180.
func (b Box) CrossesAntimeridian() bool {
	return b.MinLon > b.MaxLon
}

// Contains reports whether the point lies inside the box, edges included.
func (b Box) Contains(lat, lon float64) bool {
	p := orb.Point{lon, lat}
	for _, bound := range b.Bounds() {
		if bound.Contains(p) {
			return true
		}
	}

	return false
}

// Bounds converts the box to orb.Bounds, split in two when it crosses the antimeridian.
func (b Box) Bounds() []orb.Bound {
	if !b.CrossesAntimeridian() {
		return []orb.Bound{{
			Min: orb.Point{b.MinLon, b.MinLat},
			Max: orb.Point{b.MaxLon, b.MaxLat},
		}}
	}

	return []orb.Bound{
		{Min: orb.Point{b.MinLon, b.MinLat}, Max: orb.Point{180, b.MaxLat}},
		{Min: orb.Point{-180, b.MinLat}, Max: orb.Point{b.MaxLon, b.MaxLat}},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
