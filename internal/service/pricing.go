package service

import (
	"context"
	"fmt"

	"sarmelo-delivery/internal/model"
	"sarmelo-delivery/internal/money"
	"sarmelo-delivery/internal/repository"

	"github.com/rs/zerolog"
)

// pricingService implements PricingService over a menu snapshot.
type pricingService struct {
	items  repository.ItemRepository
	logger zerolog.Logger
}

// NewPricingService creates a new pricing service.
func NewPricingService(items repository.ItemRepository, logger zerolog.Logger) PricingService {
	return &pricingService{
		items:  items,
		logger: logger.With().Str("service", "pricing").Logger(),
	}
}

// Subtotal prices a cart against the current menu.
func (s *pricingService) Subtotal(ctx context.Context, cart []model.CartLine) (float64, []model.OrderLine, error) {
	if len(cart) == 0 {
		return 0, nil, model.ErrEmptyCart
	}

	ids := make([]int64, 0, len(cart))
	seen := make(map[int64]bool, len(cart))
	for _, line := range cart {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			ids = append(ids, line.ItemID)
		}
	}

	items, err := s.items.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("item_count", len(ids)).Msg("failed to fetch cart items")
		return 0, nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	priceByID := make(map[int64]float64, len(items))
	for _, item := range items {
		priceByID[item.ID] = item.Price
	}

	var subtotal float64
	lines := make([]model.OrderLine, 0, len(cart))
	for _, line := range cart {
		price, ok := priceByID[line.ItemID]
		if !ok {
			s.logger.Warn().Int64("item_id", line.ItemID).Msg("cart references unknown item")
			return 0, nil, fmt.Errorf("item %d: %w", line.ItemID, model.ErrItemNotFound)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}

		subtotal += price * float64(qty)
		lines = append(lines, model.OrderLine{
			ItemID:    line.ItemID,
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	// Rounded once over the final sum, not per line, so rounding error
	// never compounds.
	return money.Round2(subtotal), lines, nil
}
