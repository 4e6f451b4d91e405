package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// Issue locks the donor row so concurrent redeems for one donor are serialized,
// then inserts the coupon only while a point is still spare.
func (r *couponRepository) Issue(ctx context.Context, c model.Coupon, earned int64) (*model.Coupon, int64, error) {
	if !validID(c.DonorID) {
		return nil, 0, domainErrors.ErrNotFound
	}

	var redeemed int64
	err := r.storage.inTx(ctx, func(tx pgx.Tx) error {
		var locked string
		if err := tx.QueryRow(ctx, `SELECT id::text FROM users WHERE id=$1 FOR UPDATE`, c.DonorID).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM coupons WHERE donor_id=$1`, c.DonorID).Scan(&redeemed); err != nil {
			return err
		}
		if earned-redeemed < 1 {
			return domainErrors.ErrInsufficientPoints
		}

		const insert = `INSERT INTO coupons (code, donor_id, restaurant_id, restaurant_name, issued_at)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING id::text, issued_at`
		if err := tx.QueryRow(ctx, insert, c.Code, c.DonorID, c.RestaurantID, c.RestaurantName, c.IssuedAt).
			Scan(&c.ID, &c.IssuedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("coupon code %s already issued", c.Code)
			}
			return err
		}
		redeemed++
		return nil
	})
	if err != nil {
		return nil, redeemed, err
	}
	return &c, redeemed, nil
}

func (r *couponRepository) ListByDonor(ctx context.Context, donorID string) ([]model.Coupon, error) {
	if !validID(donorID) {
		return nil, nil
	}
	const query = `SELECT id::text, code, donor_id::text, restaurant_id, restaurant_name, issued_at, used
                   FROM coupons WHERE donor_id=$1 ORDER BY issued_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, donorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.DonorID, &c.RestaurantID, &c.RestaurantName, &c.IssuedAt, &c.Used); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
