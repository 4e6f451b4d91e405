package repository

import (
	"context"
	"time"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// DonationRepository describes persistence operations with donations.
//
// Accept and Complete are single conditional writes: only one caller can win a
// transition. When the condition does not hold they classify the failure as
// ErrNotFound, ErrInvalidState or ErrForbidden.
type DonationRepository interface {
	Create(ctx context.Context, donation model.Donation) (*model.Donation, error)
	GetByID(ctx context.Context, id string) (*model.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]model.Donation, error)
	ListAvailable(ctx context.Context) ([]model.Donation, error)
	ListAcceptedBy(ctx context.Context, ngoID string, since time.Time) ([]model.Donation, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.Donation, error)
	Accept(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error)
	Complete(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error)
}
