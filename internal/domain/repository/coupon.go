package repository

import (
	"context"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// CouponRepository describes persistence operations with coupons.
type CouponRepository interface {
	// Issue stores the coupon only if the donor still has a spare point out of
	// earned, and returns the donor's redeemed count including the new coupon.
	// It fails with ErrInsufficientPoints otherwise.
	Issue(ctx context.Context, coupon model.Coupon, earned int64) (*model.Coupon, int64, error)
	ListByDonor(ctx context.Context, donorID string) ([]model.Coupon, error)
}
