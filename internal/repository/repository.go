package repository

import (
	"context"

	"sarmelo-delivery/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ItemRepository defines the interface for menu item data access operations.
type ItemRepository interface {
	// ListAvailable retrieves the public menu: available items joined with
	// their category name, ordered by category then item name.
	ListAvailable(ctx context.Context) ([]model.MenuItem, error)

	// GetByIDs retrieves menu items by their IDs. Missing IDs are simply
	// absent from the result; callers decide whether that is an error.
	GetByIDs(ctx context.Context, ids []int64) ([]model.MenuItem, error)
}

// CouponRepository defines the interface for coupon data access operations.
type CouponRepository interface {
	// GetActiveByCode retrieves an active coupon by its upper-cased code.
	// Returns (nil, nil) when no active coupon matches, so inactive and
	// absent codes are indistinguishable to callers.
	GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error)

	// List retrieves all coupons, newest first.
	List(ctx context.Context) ([]model.Coupon, error)

	// Create inserts a new coupon and fills in its generated ID and
	// creation timestamp. Returns model.ErrCouponExists on a duplicate code.
	Create(ctx context.Context, coupon *model.Coupon) error

	// Delete removes a coupon by ID. Reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderLines inserts the order's lines within the provided
	// transaction.
	CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// GetByID retrieves an order and its lines (with item display fields).
	// Returns (nil, nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderLine, error)

	// GetStatus retrieves only an order's current status. Returns
	// ("", nil) when the order does not exist.
	GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error)

	// UpdateStatus sets an order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)

	// ListAll retrieves every order, newest first.
	ListAll(ctx context.Context) ([]model.Order, error)
}
