package test

import (
	"context"
	"time"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for account endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, model.Registration) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (model.Identity, error)
	CurrentUserFn  func(context.Context, model.Identity) (*model.User, error)
}

// Register delegates to provided function or returns a donor with token "token".
func (s AuthFacadeStub) Register(ctx context.Context, reg model.Registration) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return &model.User{ID: "user-1", Email: reg.Email, Name: reg.Name, Role: model.RoleDonor}, "token", nil
}

// Authenticate delegates to provided function or returns token "token".
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email, Role: model.RoleDonor}, "token", nil
}

// ParseToken accepts "role:id" tokens unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return StrategyStub{}.ParseToken(token)
}

// CurrentUser returns a user mirroring the identity unless overridden.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, identity model.Identity) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, identity)
	}
	return &model.User{ID: identity.UserID, Email: identity.UserID + "@example.org", Role: identity.Role}, nil
}

// DonorFacadeStub simulates donation intake and coupons.
type DonorFacadeStub struct {
	MoneyFn    func(context.Context, model.Identity, model.MonetaryDraft) (*model.Donation, error)
	FoodFn     func(context.Context, model.Identity, model.FoodDraft) (*model.Donation, error)
	OverviewFn func(context.Context, model.Identity) (*model.DonorOverview, error)
	RedeemFn   func(context.Context, model.Identity, string, string) (*model.Redemption, error)
}

// DonateMoney echoes the draft as a stored donation.
func (s DonorFacadeStub) DonateMoney(ctx context.Context, identity model.Identity, draft model.MonetaryDraft) (*model.Donation, error) {
	if s.MoneyFn != nil {
		return s.MoneyFn(ctx, identity, draft)
	}
	return &model.Donation{ID: "d-1", DonorID: identity.UserID, Type: model.DonationTypeMonetary, Amount: draft.Amount, Address: draft.Address}, nil
}

// DonateFood echoes the draft as an available donation.
func (s DonorFacadeStub) DonateFood(ctx context.Context, identity model.Identity, draft model.FoodDraft) (*model.Donation, error) {
	if s.FoodFn != nil {
		return s.FoodFn(ctx, identity, draft)
	}
	return &model.Donation{
		ID:       "d-1",
		DonorID:  identity.UserID,
		Type:     model.DonationTypeFood,
		FoodItem: draft.FoodItem,
		Quantity: draft.Quantity,
		Address:  draft.Address,
		Status:   model.DonationStatusAvailable,
	}, nil
}

// Overview returns a single food donation and one spare point by default.
func (s DonorFacadeStub) Overview(ctx context.Context, identity model.Identity) (*model.DonorOverview, error) {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx, identity)
	}
	return &model.DonorOverview{
		Donations:       []model.Donation{{ID: "d-1", DonorID: identity.UserID, Type: model.DonationTypeFood, CreatedAt: time.Unix(0, 0)}},
		TotalPoints:     1,
		AvailablePoints: 1,
	}, nil
}

// Redeem issues a fixed coupon unless overridden.
func (s DonorFacadeStub) Redeem(ctx context.Context, identity model.Identity, restaurantID, restaurantName string) (*model.Redemption, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, identity, restaurantID, restaurantName)
	}
	return &model.Redemption{
		Coupon: model.Coupon{
			Code:           "FB-ABCD1234",
			DonorID:        identity.UserID,
			RestaurantID:   restaurantID,
			RestaurantName: restaurantName,
		},
		Remaining: 0,
	}, nil
}

// NGOFacadeStub simulates the pickup lifecycle.
type NGOFacadeStub struct {
	BoardFn    func(context.Context, model.Identity) (*model.NGOBoard, error)
	AcceptFn   func(context.Context, model.Identity, string) (*model.Donation, error)
	CompleteFn func(context.Context, model.Identity, string) (*model.Donation, error)
}

// Board returns an empty board unless overridden.
func (s NGOFacadeStub) Board(ctx context.Context, identity model.Identity) (*model.NGOBoard, error) {
	if s.BoardFn != nil {
		return s.BoardFn(ctx, identity)
	}
	return &model.NGOBoard{}, nil
}

// AcceptDonation marks the donation accepted by the caller.
func (s NGOFacadeStub) AcceptDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, identity, donationID)
	}
	return &model.Donation{ID: donationID, Status: model.DonationStatusAccepted, AcceptedBy: identity.UserID}, nil
}

// CompleteDonation marks the donation completed.
func (s NGOFacadeStub) CompleteDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, identity, donationID)
	}
	return &model.Donation{ID: donationID, Status: model.DonationStatusCompleted, AcceptedBy: identity.UserID}, nil
}

// SystemFacadeStub simulates health and chatbot answers.
type SystemFacadeStub struct {
	HealthErr error
	Reply     string
}

// HealthCheck returns the configured error.
func (s SystemFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// ChatReply returns the configured reply or echoes the message.
func (s SystemFacadeStub) ChatReply(message string) string {
	if s.Reply != "" {
		return s.Reply
	}
	return "echo: " + message
}

// FoodBridgeFacadeStub aggregates all facade stubs.
type FoodBridgeFacadeStub struct {
	AuthFacadeStub
	DonorFacadeStub
	NGOFacadeStub
	SystemFacadeStub
}
