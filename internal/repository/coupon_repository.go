package repository

import (
	"context"
	"errors"
	"fmt"

	"sarmelo-delivery/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// couponRepository implements the CouponRepository interface using PostgreSQL.
type couponRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCouponRepository creates a new PostgreSQL-backed coupon repository.
func NewCouponRepository(pool *pgxpool.Pool, logger zerolog.Logger) CouponRepository {
	return &couponRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "coupon").Logger(),
	}
}

// GetActiveByCode retrieves an active coupon by its upper-cased code.
func (r *couponRepository) GetActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `
		SELECT id, codigo, descricao, tipo, valor, minimo, ativo, criado_em
		FROM cupons
		WHERE UPPER(codigo) = $1 AND ativo
	`

	var coupon model.Coupon
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.Kind,
		&coupon.Value,
		&coupon.Minimum,
		&coupon.Active,
		&coupon.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("code", code).Msg("no active coupon for code")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("code", code).Msg("failed to query coupon")
		return nil, fmt.Errorf("failed to query coupon: %w", err)
	}

	return &coupon, nil
}

// List retrieves all coupons, newest first.
func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	query := `
		SELECT id, codigo, descricao, tipo, valor, minimo, ativo, criado_em
		FROM cupons
		ORDER BY criado_em DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query coupons")
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	var coupons []model.Coupon
	for rows.Next() {
		var coupon model.Coupon
		err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.Description,
			&coupon.Kind,
			&coupon.Value,
			&coupon.Minimum,
			&coupon.Active,
			&coupon.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan coupon row")
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating coupon rows")
		return nil, fmt.Errorf("error iterating coupons: %w", err)
	}

	return coupons, nil
}

// Create inserts a new coupon.
func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	query := `
		INSERT INTO cupons (codigo, descricao, tipo, valor, minimo, ativo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, criado_em
	`

	err := r.pool.QueryRow(ctx, query,
		coupon.Code,
		coupon.Description,
		coupon.Kind,
		coupon.Value,
		coupon.Minimum,
		coupon.Active,
	).Scan(&coupon.ID, &coupon.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn().Str("code", coupon.Code).Msg("coupon code already exists")
			return model.ErrCouponExists
		}
		r.logger.Error().Err(err).Str("code", coupon.Code).Msg("failed to create coupon")
		return fmt.Errorf("failed to create coupon: %w", err)
	}

	r.logger.Debug().Str("code", coupon.Code).Msg("coupon created successfully")
	return nil
}

// Delete removes a coupon by ID.
func (r *couponRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cupons WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("coupon_id", id).Msg("failed to delete coupon")
		return false, fmt.Errorf("failed to delete coupon: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	r.logger.Debug().Int64("coupon_id", id).Msg("coupon deleted successfully")
	return true, nil
}
