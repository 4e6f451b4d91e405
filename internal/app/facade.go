package app

import (
	"context"

	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/usecase"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// FoodBridgeFacade is the single entry point handlers talk to.
type FoodBridgeFacade struct {
	auth      *usecase.AuthUseCase
	donations *usecase.DonationUseCase
	coupons   *usecase.CouponUseCase
	ledger    *usecase.LedgerUseCase
	health    HealthChecker
}

func NewFoodBridgeFacade(auth *usecase.AuthUseCase, donations *usecase.DonationUseCase, coupons *usecase.CouponUseCase, ledger *usecase.LedgerUseCase, health HealthChecker) *FoodBridgeFacade {
	return &FoodBridgeFacade{auth: auth, donations: donations, coupons: coupons, ledger: ledger, health: health}
}

func (f *FoodBridgeFacade) Register(ctx context.Context, reg model.Registration) (*model.User, string, error) {
	return f.auth.Register(ctx, reg)
}

func (f *FoodBridgeFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *FoodBridgeFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *FoodBridgeFacade) CurrentUser(ctx context.Context, identity model.Identity) (*model.User, error) {
	return f.auth.GetByID(ctx, identity.UserID)
}

func (f *FoodBridgeFacade) DonateMoney(ctx context.Context, identity model.Identity, draft model.MonetaryDraft) (*model.Donation, error) {
	return f.donations.DonateMoney(ctx, identity, draft)
}

func (f *FoodBridgeFacade) DonateFood(ctx context.Context, identity model.Identity, draft model.FoodDraft) (*model.Donation, error) {
	return f.donations.DonateFood(ctx, identity, draft)
}

func (f *FoodBridgeFacade) Overview(ctx context.Context, identity model.Identity) (*model.DonorOverview, error) {
	return f.ledger.Overview(ctx, identity)
}

func (f *FoodBridgeFacade) Redeem(ctx context.Context, identity model.Identity, restaurantID, restaurantName string) (*model.Redemption, error) {
	return f.coupons.Redeem(ctx, identity, restaurantID, restaurantName)
}

func (f *FoodBridgeFacade) Board(ctx context.Context, identity model.Identity) (*model.NGOBoard, error) {
	return f.donations.Board(ctx, identity)
}

func (f *FoodBridgeFacade) AcceptDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	return f.donations.Accept(ctx, identity, donationID)
}

func (f *FoodBridgeFacade) CompleteDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	return f.donations.Complete(ctx, identity, donationID)
}

func (f *FoodBridgeFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *FoodBridgeFacade) ChatReply(message string) string {
	return usecase.ChatReply(message)
}
