package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	"github.com/polkiloo/foodbridge/internal/pkg/sanitize"
)

// CouponUseCase turns earned points into restaurant coupons.
type CouponUseCase struct {
	donations repository.DonationRepository
	coupons   repository.CouponRepository
	codes     CodeGenerator
	recorder  Recorder
	now       func() time.Time
}

// NewCouponUseCase constructs CouponUseCase.
func NewCouponUseCase(donations repository.DonationRepository, coupons repository.CouponRepository, codes CodeGenerator, recorder Recorder) *CouponUseCase {
	return &CouponUseCase{donations: donations, coupons: coupons, codes: codes, recorder: recorder, now: time.Now}
}

// Redeem spends one point of the donor on a coupon for the given restaurant.
// Points are recomputed from the full donation history on every call; the
// store decides atomically whether a point is still spare.
func (u *CouponUseCase) Redeem(ctx context.Context, identity model.Identity, restaurantID, restaurantName string) (*model.Redemption, error) {
	if err := authorize(identity, model.RoleDonor); err != nil {
		return nil, err
	}

	history, err := u.donations.ListByDonor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("load donation history: %w", err)
	}
	earned := ComputePoints(history)
	if earned < 1 {
		u.recorder.RedeemRejected("insufficient_points")
		return nil, domainErrors.ErrInsufficientPoints
	}

	draft := model.Coupon{
		Code:           u.codes.Generate(),
		DonorID:        identity.UserID,
		RestaurantID:   sanitize.Text(restaurantID),
		RestaurantName: sanitize.Text(restaurantName),
		IssuedAt:       u.now().UTC(),
	}

	coupon, redeemed, err := u.coupons.Issue(ctx, draft, earned)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInsufficientPoints) {
			u.recorder.RedeemRejected("insufficient_points")
			return nil, err
		}
		u.recorder.RedeemRejected("store_error")
		return nil, fmt.Errorf("issue coupon: %w", err)
	}

	u.recorder.CouponIssued()
	remaining := earned - redeemed
	if remaining < 0 {
		remaining = 0
	}
	return &model.Redemption{Coupon: *coupon, Remaining: remaining}, nil
}
