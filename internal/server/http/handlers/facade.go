package handlers

import (
	"context"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, reg model.Registration) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Identity, error)
	CurrentUser(ctx context.Context, identity model.Identity) (*model.User, error)
}

// DonorFacade covers donation intake, the donor dashboard and coupons.
type DonorFacade interface {
	DonateMoney(ctx context.Context, identity model.Identity, draft model.MonetaryDraft) (*model.Donation, error)
	DonateFood(ctx context.Context, identity model.Identity, draft model.FoodDraft) (*model.Donation, error)
	Overview(ctx context.Context, identity model.Identity) (*model.DonorOverview, error)
	Redeem(ctx context.Context, identity model.Identity, restaurantID, restaurantName string) (*model.Redemption, error)
}

// NGOFacade covers the pickup lifecycle.
type NGOFacade interface {
	Board(ctx context.Context, identity model.Identity) (*model.NGOBoard, error)
	AcceptDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error)
	CompleteDonation(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error)
}

// SystemFacade exposes health and the help widget.
type SystemFacade interface {
	HealthCheck(ctx context.Context) error
	ChatReply(message string) string
}

// FoodBridgeFacade aggregates the full set of operations used across handlers.
type FoodBridgeFacade interface {
	AuthFacade
	DonorFacade
	NGOFacade
	SystemFacade
}
