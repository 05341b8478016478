package geocoding

import (
	"context"
	"errors"
)

var (
	// ErrLocationNotFound is returned when the provider cannot resolve the
	// location text to coordinates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrServiceUnavailable is returned on network or provider failures.
	ErrServiceUnavailable = errors.New("geocoding service unavailable")
)

// Coordinates is a resolved latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text location to coordinates. Implementations
// are injected into usecases so tests can substitute a stub.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*Coordinates, error)
}
