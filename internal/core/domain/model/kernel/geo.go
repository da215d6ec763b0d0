package kernel

import (
	"fmt"

	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"
)

const (
	// GeoLatMin and GeoLatMax bound valid latitude values in degrees.
	GeoLatMin = -90.0
	GeoLatMax = 90.0
	// GeoLonMin and GeoLonMax bound valid longitude values in degrees.
	GeoLonMin = -180.0
	GeoLonMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair attached to a delivery
// address. Deliveries may legitimately have no coordinates at all (geocoding
// is optional); callers model that with a nil *GeoPoint, never with a
// zero-value GeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating that latitude and longitude
// fall within their geographic bounds.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < GeoLatMin || lat > GeoLatMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, GeoLatMin, GeoLatMax)
	}
	if lon < GeoLonMin || lon > GeoLonMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lon, GeoLonMin, GeoLonMax)
	}

	return GeoPoint{
		lat:   lat,
		lon:   lon,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual reports whether two points carry identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// Validate ensures the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lon)
}
