package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
)

// LedgerUseCase builds the donor view of donations, points and coupons.
type LedgerUseCase struct {
	donations repository.DonationRepository
	coupons   repository.CouponRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(donations repository.DonationRepository, coupons repository.CouponRepository) *LedgerUseCase {
	return &LedgerUseCase{donations: donations, coupons: coupons}
}

// Overview returns donations and coupons newest first, with earned and spare points.
func (u *LedgerUseCase) Overview(ctx context.Context, identity model.Identity) (*model.DonorOverview, error) {
	if err := authorize(identity, model.RoleDonor); err != nil {
		return nil, err
	}

	donations, err := u.donations.ListByDonor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	coupons, err := u.coupons.ListByDonor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}

	total := ComputePoints(donations)
	available := total - int64(len(coupons))
	if available < 0 {
		available = 0
	}

	return &model.DonorOverview{
		Donations:       donations,
		Coupons:         coupons,
		TotalPoints:     total,
		AvailablePoints: available,
	}, nil
}
