package service

import (
	"context"
	"fmt"
	"time"

	"sarmelo-delivery/internal/model"
	"sarmelo-delivery/internal/money"
	"sarmelo-delivery/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService. It composes the pricing engine and
// coupon application into an atomically persisted order.
type orderService struct {
	orders  repository.OrderRepository
	pricing PricingService
	coupons CouponService
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	pricing PricingService,
	coupons CouponService,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orders:  orders,
		pricing: pricing,
		coupons: coupons,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// Create prices, discounts and persists a new order.
//
// The freight amount is taken from the request as quoted to the client by
// POST /frete rather than recomputed here; a client could therefore submit a
// lower value. Kept for compatibility with the existing checkout flow.
func (s *orderService) Create(ctx context.Context, userID int64, req *model.OrderRequest) (*model.OrderSummary, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	subtotal, lines, err := s.pricing.Subtotal(ctx, req.Items)
	if err != nil {
		s.logger.Warn().Err(err).Int("item_count", len(req.Items)).Msg("pricing failed")
		return nil, err
	}

	var discount float64
	var couponCode *string
	if req.CouponCode != nil && *req.CouponCode != "" {
		discount, couponCode = s.coupons.Apply(ctx, *req.CouponCode, subtotal)
	}

	freight := *req.Freight
	total := money.Round2(subtotal + freight - discount)

	tx, err := s.orders.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Roll back unless the order and all of its lines committed together.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order := &model.Order{
		ID:         uuid.New(),
		UserID:     userID,
		Address:    req.Address,
		Status:     model.InitialStatus(),
		Subtotal:   subtotal,
		Freight:    freight,
		Discount:   discount,
		Total:      total,
		CouponCode: couponCode,
		CreatedAt:  time.Now(),
	}

	if err = s.orders.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range lines {
		lines[i].ID = uuid.New()
		lines[i].OrderID = order.ID
	}

	if err = s.orders.CreateOrderLines(ctx, tx, lines); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("line_count", len(lines)).
			Msg("failed to create order lines")
		return nil, fmt.Errorf("failed to create order lines: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("line_count", len(lines)).
		Float64("total", total).
		Msg("order created successfully")

	return &model.OrderSummary{
		ID:       order.ID,
		Subtotal: subtotal,
		Freight:  freight,
		Discount: discount,
		Total:    total,
		Status:   order.Status,
		Message:  "Pedido realizado com sucesso!",
	}, nil
}

// GetByID retrieves an order with its lines, enforcing customer ownership.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID, ident model.Identity) (*model.OrderDetail, error) {
	order, lines, err := s.orders.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if ident.Role == model.RoleCustomer && order.UserID != ident.UserID {
		s.logger.Warn().
			Str("order_id", id.String()).
			Int64("owner_id", order.UserID).
			Int64("requester_id", ident.UserID).
			Msg("customer attempted to read another user's order")
		return nil, model.ErrForbidden
	}

	return &model.OrderDetail{Order: *order, Lines: lines}, nil
}

// ListByUser retrieves a customer's orders.
func (s *orderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves every order.
func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Advance moves an order one step forward in the delivery sequence.
func (s *orderService) Advance(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error) {
	current, err := s.orders.GetStatus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to advance order: %w", err)
	}
	if current == "" {
		return nil, model.ErrOrderNotFound
	}

	next := current.Next()
	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to advance order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(current)).
		Str("to", string(next)).
		Msg("order status advanced")

	return &model.StatusUpdate{
		ID:      id,
		Status:  next,
		Message: fmt.Sprintf("Status atualizado para: %s", next),
	}, nil
}

// validateOrderRequest validates the checkout payload.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyCart
	}
	if req.Address == "" {
		return model.ErrMissingAddress
	}
	if req.Freight == nil || *req.Freight < 0 {
		return model.ErrInvalidFreight
	}
	return nil
}
