package allocation

import (
	"math"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two
// addresses, rounded to two decimals. It returns nil when either address is
// missing or has no geocoordinates — "unknown distance" is a valid answer
// and callers must treat it as neutral, never as zero (zero would read as
// misleadingly close).
func DistanceKm(a, b *model.Address) *float64 {
	if !a.HasCoordinates() || !b.HasCoordinates() {
		return nil
	}

	d := haversine(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
	d = math.Round(d*100) / 100
	return &d
}

// haversine computes the great-circle distance between two coordinate
// pairs given in degrees.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
