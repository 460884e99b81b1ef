package service

import (
	"context"
	"fmt"

	"sarmelo-delivery/internal/model"
	"sarmelo-delivery/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	items  repository.ItemRepository
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(items repository.ItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		items:  items,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves the public menu of available items.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.items.ListAvailable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}
