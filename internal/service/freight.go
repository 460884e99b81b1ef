package service

import (
	"context"

	"sarmelo-delivery/internal/freight"
	"sarmelo-delivery/internal/geo"
	"sarmelo-delivery/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// AddressResolver resolves a free-text address to coordinates. Satisfied by
// *geo.Resolver.
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

// freightService implements FreightService.
type freightService struct {
	resolver AddressResolver
	calc     *freight.Calculator
	logger   zerolog.Logger
}

// NewFreightService creates a new freight service.
func NewFreightService(resolver AddressResolver, calc *freight.Calculator, logger zerolog.Logger) FreightService {
	return &freightService{
		resolver: resolver,
		calc:     calc,
		logger:   logger.With().Str("service", "freight").Logger(),
	}
}

// Quote geocodes both addresses concurrently and prices the distance between
// them. The quote's provenance reflects the customer-address lookup.
func (s *freightService) Quote(ctx context.Context, customerAddress, restaurantAddress string) (*model.FreightQuote, error) {
	var customer, restaurant geo.Point

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = s.resolver.Resolve(gctx, customerAddress)
		return err
	})
	g.Go(func() error {
		var err error
		restaurant, err = s.resolver.Resolve(gctx, restaurantAddress)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to geocode addresses")
		return nil, err
	}

	quote := s.calc.Quote(customer, restaurant)

	note := "Geocoding via Positionstack"
	if customer.Source == "osm" {
		note = "Usando OpenStreetMap como fallback (configure POSITIONSTACK_KEY para melhorar)"
	}

	s.logger.Info().
		Float64("km", quote.Km).
		Float64("fee", quote.Fee).
		Str("source", customer.Source).
		Msg("freight quoted")

	return &model.FreightQuote{
		Km:     quote.Km,
		Fee:    quote.Fee,
		Source: customer.Source,
		Note:   note,
	}, nil
}
