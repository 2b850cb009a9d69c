// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate as an orb point ([lng, lat]).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CoordinateFromPoint converts an orb point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// IsValid reports whether the coordinate is finite and inside the WGS84 range.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
