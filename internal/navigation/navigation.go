// Package navigation holds the pure voyage math: great-circle distances,
// travel durations and arrival estimates.
package navigation

import (
	"errors"
	"math"
	"time"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// KmhPerKnot converts knots to km/h.
	KmhPerKnot = 1.852
)

var ErrZeroSpeed = errors.New("navigation: speed must be positive")

// Haversine returns the great-circle distance in kilometres between two
// points given in degrees.
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	d = 2·R·asin(√a)
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := toRad(lat1)
	rlat2 := toRad(lat2)
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(rlat1)*math.Cos(rlat2)*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// TravelHours returns the voyage duration for a distance at a given speed in
// knots. A zero or negative speed is an error, not a division by zero.
func TravelHours(distanceKm, speedKnots float64) (float64, error) {
	if speedKnots <= 0 {
		return 0, ErrZeroSpeed
	}
	return distanceKm / (speedKnots * KmhPerKnot), nil
}

// ETA is the departure time plus the travel duration.
func ETA(departedAt time.Time, travelHours float64) time.Time {
	return departedAt.Add(time.Duration(travelHours * float64(time.Hour)))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
