// Package geo resolves free-text addresses to coordinates through an ordered
// chain of geocoding providers.
package geo

import (
	"context"
	"errors"
)

var (
	// ErrNoResults is returned by a provider that answered but found no
	// match for the address.
	ErrNoResults = errors.New("no results for address")

	// ErrMissingCredentials is returned by a provider whose API credentials
	// are not configured. The resolver treats it like any other provider
	// failure and moves on to the next provider.
	ErrMissingCredentials = errors.New("provider credentials not configured")

	// ErrAddressUnresolvable is returned once every provider in the chain
	// has failed for an address.
	ErrAddressUnresolvable = errors.New("address could not be resolved by any provider")
)

// Point is a resolved coordinate. Source names the provider that produced it.
type Point struct {
	Lat    float64
	Lon    float64
	Source string
}

// Provider geocodes a single address. One attempt per call; retries and
// fallback are the resolver's concern.
type Provider interface {
	// Name identifies the provider in provenance tags and logs.
	Name() string

	// Geocode resolves an address to a coordinate. It must honour ctx
	// cancellation and return ErrNoResults for an empty result set.
	Geocode(ctx context.Context, address string) (Point, error)
}
