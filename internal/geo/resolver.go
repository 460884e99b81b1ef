package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Resolver tries each provider in order until one returns a coordinate.
// A provider fails by returning an error (network failure, missing
// credentials, zero results) or by exceeding the per-provider timeout; either
// way the resolver moves on to the next provider. Adding or removing
// providers never changes the resolver logic.
type Resolver struct {
	providers []Provider
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewResolver creates a resolver over the given provider chain. Providers are
// tried in slice order, each bounded by timeout.
func NewResolver(providers []Provider, timeout time.Duration, logger zerolog.Logger) *Resolver {
	return &Resolver{
		providers: providers,
		timeout:   timeout,
		logger:    logger.With().Str("component", "geo-resolver").Logger(),
	}
}

// Resolve geocodes an address. The returned point's Source names the provider
// that answered. It returns ErrAddressUnresolvable once the chain is
// exhausted.
func (r *Resolver) Resolve(ctx context.Context, address string) (Point, error) {
	for _, provider := range r.providers {
		pctx, cancel := context.WithTimeout(ctx, r.timeout)
		point, err := provider.Geocode(pctx, address)
		cancel()

		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Str("address", address).
				Msg("geocoding provider failed, trying next")
			continue
		}

		point.Source = provider.Name()
		r.logger.Debug().
			Str("provider", provider.Name()).
			Float64("lat", point.Lat).
			Float64("lon", point.Lon).
			Msg("address resolved")
		return point, nil
	}

	return Point{}, fmt.Errorf("%w: %q", ErrAddressUnresolvable, address)
}
