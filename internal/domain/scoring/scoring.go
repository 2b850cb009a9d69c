// Package scoring turns a guess into a distance and a distance into points.
package scoring

import (
	"math"

	"guessr/internal/util"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for Haversine distances.
	EarthRadiusKm = 6371.0

	// MaxScore is awarded for an exact guess.
	MaxScore = 5000
)

// DistanceKm returns the great-circle distance between a and b in kilometres.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := toRadians(b.Lat() - a.Lat())
	dLng := toRadians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Score maps a distance in kilometres to points in [0, MaxScore].
// Bands are evaluated top-down; the first match wins.
func Score(distanceKm float64) int {
	d := distanceKm

	switch {
	case d <= 0:
		return MaxScore
	case d < 1:
		return util.RoundHalfUp(5000 - d*1000)
	case d < 10:
		return util.RoundHalfUp(4000 - (d-1)*100)
	case d < 50:
		return util.RoundHalfUp(3000 - (d-10)*25)
	case d < 100:
		return util.RoundHalfUp(2000 - (d-50)*20)
	case d < 500:
		return util.RoundHalfUp(1000 - (d-100)*2)
	default:
		return max(0, util.RoundHalfUp(500-(d-500)*0.5))
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
