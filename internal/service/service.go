package service

import (
	"context"

	"sarmelo-delivery/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for browsing the menu.
type MenuService interface {
	// List retrieves the public menu of available items.
	List(ctx context.Context) ([]model.MenuItem, error)
}

// PricingService computes an order's authoritative subtotal from the menu.
// Client-submitted prices are never trusted.
type PricingService interface {
	// Subtotal prices a cart against the current menu. Quantities below 1
	// are treated as 1. It fails with model.ErrItemNotFound if any cart
	// line references an unknown item; unknown items are never silently
	// dropped. The returned lines carry the unit price captured from the
	// menu at call time.
	Subtotal(ctx context.Context, cart []model.CartLine) (float64, []model.OrderLine, error)
}

// CouponService defines coupon operations. Validate and Apply share the same
// eligibility and discount rules but differ in failure policy: the pre-check
// fails loudly, while applying during checkout degrades to a zero discount so
// the order still goes through.
type CouponService interface {
	// Validate is the pre-checkout check. It returns an error when the
	// code is unknown/inactive or the subtotal is below the coupon's
	// minimum.
	Validate(ctx context.Context, code string, subtotal float64) (*model.CouponValidation, error)

	// Apply computes the discount for an order being placed. Any reason
	// the coupon cannot apply (unknown, inactive, below minimum, lookup
	// failure) yields a zero discount and a nil code; it never blocks the
	// order.
	Apply(ctx context.Context, code string, subtotal float64) (float64, *string)

	// List retrieves all coupons for restaurant administration.
	List(ctx context.Context) ([]model.Coupon, error)

	// Create registers a new coupon.
	Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)

	// Delete removes a coupon by ID.
	Delete(ctx context.Context, id int64) error
}

// FreightService quotes delivery fees from a pair of free-text addresses.
type FreightService interface {
	// Quote geocodes both addresses and prices the distance between them.
	Quote(ctx context.Context, customerAddress, restaurantAddress string) (*model.FreightQuote, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create prices, discounts and persists a new order atomically with
	// its lines.
	Create(ctx context.Context, userID int64, req *model.OrderRequest) (*model.OrderSummary, error)

	// GetByID retrieves an order with its lines. Customers may only see
	// their own orders.
	GetByID(ctx context.Context, id uuid.UUID, ident model.Identity) (*model.OrderDetail, error)

	// ListByUser retrieves a customer's orders, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// ListAll retrieves every order for the restaurant view.
	ListAll(ctx context.Context) ([]model.Order, error)

	// Advance moves an order one step forward in the delivery sequence.
	Advance(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error)
}
