package service

import (
	"context"
	"fmt"
	"strings"

	"sarmelo-delivery/internal/model"
	"sarmelo-delivery/internal/money"
	"sarmelo-delivery/internal/repository"

	"github.com/rs/zerolog"
)

// couponService implements CouponService.
type couponService struct {
	coupons repository.CouponRepository
	logger  zerolog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(coupons repository.CouponRepository, logger zerolog.Logger) CouponService {
	return &couponService{
		coupons: coupons,
		logger:  logger.With().Str("service", "coupon").Logger(),
	}
}

// discountFor computes the discount a coupon grants on a subtotal, clamped to
// [0, subtotal] and rounded to 2 decimals. Shared by Validate and Apply so
// the two failure policies can never drift apart on the amount itself.
func discountFor(coupon *model.Coupon, subtotal float64) float64 {
	var discount float64
	switch coupon.Kind {
	case model.CouponPercentage:
		discount = subtotal * coupon.Value / 100
	case model.CouponFixed:
		discount = coupon.Value
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return money.Round2(discount)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate is the pre-checkout coupon check; it fails loudly.
func (s *couponService) Validate(ctx context.Context, code string, subtotal float64) (*model.CouponValidation, error) {
	coupon, err := s.coupons.GetActiveByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to validate coupon: %w", err)
	}
	if coupon == nil {
		s.logger.Debug().Str("code", code).Msg("coupon not found or inactive")
		return nil, model.ErrCouponNotFound
	}

	// The minimum is inclusive: subtotal == minimum qualifies.
	if subtotal < coupon.Minimum {
		s.logger.Debug().
			Str("code", coupon.Code).
			Float64("subtotal", subtotal).
			Float64("minimum", coupon.Minimum).
			Msg("subtotal below coupon minimum")
		return nil, model.NewCouponMinimumError(coupon.Minimum)
	}

	discount := discountFor(coupon, subtotal)
	return &model.CouponValidation{
		Valid: true,
		Coupon: model.CouponSummary{
			Code:        coupon.Code,
			Description: coupon.Description,
			Kind:        coupon.Kind,
			Value:       coupon.Value,
		},
		Discount: discount,
		Message:  fmt.Sprintf("Cupom aplicado! Desconto de R$ %.2f", discount),
	}, nil
}

// Apply computes the discount for an order being placed. Whatever goes wrong,
// the order proceeds without a discount.
func (s *couponService) Apply(ctx context.Context, code string, subtotal float64) (float64, *string) {
	coupon, err := s.coupons.GetActiveByCode(ctx, normalizeCode(code))
	if err != nil {
		s.logger.Warn().Err(err).Str("code", code).Msg("coupon lookup failed, proceeding without discount")
		return 0, nil
	}
	if coupon == nil {
		s.logger.Debug().Str("code", code).Msg("coupon not found or inactive, proceeding without discount")
		return 0, nil
	}
	if subtotal < coupon.Minimum {
		s.logger.Debug().
			Str("code", coupon.Code).
			Float64("subtotal", subtotal).
			Float64("minimum", coupon.Minimum).
			Msg("subtotal below coupon minimum, proceeding without discount")
		return 0, nil
	}

	return discountFor(coupon, subtotal), &coupon.Code
}

// List retrieves all coupons.
func (s *couponService) List(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.coupons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// Create registers a new coupon.
func (s *couponService) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	if req == nil || strings.TrimSpace(req.Code) == "" || req.Value == nil {
		return nil, model.NewValidationError("Código, tipo e valor são obrigatórios")
	}
	if !req.Kind.Valid() {
		return nil, model.NewValidationError("Tipo deve ser 'percentual' ou 'fixo'")
	}
	if *req.Value < 0 || req.Minimum < 0 {
		return nil, model.NewValidationError("Valor e mínimo não podem ser negativos")
	}

	coupon := &model.Coupon{
		Code:        normalizeCode(req.Code),
		Description: req.Description,
		Kind:        req.Kind,
		Value:       *req.Value,
		Minimum:     req.Minimum,
		Active:      req.Active,
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", coupon.Code).Str("kind", string(coupon.Kind)).Msg("coupon created")
	return coupon, nil
}

// Delete removes a coupon by ID.
func (s *couponService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.coupons.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if !deleted {
		return model.NewDomainError(model.ErrCodeCouponNotFound, "Cupom não encontrado")
	}

	s.logger.Info().Int64("coupon_id", id).Msg("coupon deleted")
	return nil
}
