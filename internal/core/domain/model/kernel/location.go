package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in decimal degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a Location was not created via
// NewLocation or ParseLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation constructors")

// Location is an immutable geographic point in decimal degrees.
// The zero value is invalid; use NewLocation or ParseLocation.
type Location struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location from decimal-degree coordinates.
// Returns an out-of-range error when either coordinate lies outside the
// valid bounds.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation creates a Location from decimal-string coordinates, as stored
// in legacy numeric columns. Returns an invalid-value error when either
// string does not parse as a decimal number, and an out-of-range error when
// the parsed coordinates lie outside the valid bounds.
func ParseLocation(latitude, longitude string) (Location, error) {
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewLocation(lat, lon)
}

// Validate checks that the Location was created via a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual reports whether two locations have identical coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// DistanceKmTo returns the great-circle distance to other in kilometers,
// computed with the haversine formula. Identical points yield 0.
func (l Location) DistanceKmTo(other Location) float64 {
	dLat := radians(other.latitude - l.latitude)
	dLon := radians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(l.latitude))*math.Cos(radians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.latitude, l.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	l.longitude = longitude
	return nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
