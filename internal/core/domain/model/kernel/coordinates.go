package kernel

import (
	"errors"
	"fmt"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when using a zero-value
// Coordinates instance. Coordinates must be created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errors.New("Coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic point on a delivery route together with
// its human-readable address text. It is an immutable value object; route
// endpoints on an order are replaced wholesale, never partially mutated.
//
// Example:
//
//	start, err := kernel.NewCoordinates(3.211, 123.1213, "10 Long Lama")
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string

	guard guard.ConstructorGuard
}

// NewCoordinates creates a validated Coordinates value.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
// The address text is free-form and may be empty.
func NewCoordinates(latitude, longitude float64, address string) (Coordinates, error) {
	c := Coordinates{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setLatitude(latitude),
		c.setLongitude(longitude),
	); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate ensures the Coordinates instance was created via NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// Address returns the free-form address text for the point.
func (c Coordinates) Address() string {
	return c.address
}

// String implements fmt.Stringer for logging and error messages.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%v,%v)", c.latitude, c.longitude)
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%v is not within [%v, %v]", latitude, LatitudeMin, LatitudeMax))
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%v is not within [%v, %v]", longitude, LongitudeMin, LongitudeMax))
	}
	c.longitude = longitude
	return nil
}
