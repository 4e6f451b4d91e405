package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	"github.com/polkiloo/foodbridge/internal/pkg/sanitize"
)

// acceptedListWindow bounds how far back an NGO sees its own accepted donations.
const acceptedListWindow = 24 * time.Hour

// DonationUseCase drives donation creation and the food pickup lifecycle.
type DonationUseCase struct {
	donations repository.DonationRepository
	notifier  Notifier
	recorder  Recorder
	now       func() time.Time
}

// NewDonationUseCase constructs DonationUseCase.
func NewDonationUseCase(donations repository.DonationRepository, notifier Notifier, recorder Recorder) *DonationUseCase {
	return &DonationUseCase{donations: donations, notifier: notifier, recorder: recorder, now: time.Now}
}

// DonateMoney records a settled monetary donation.
func (u *DonationUseCase) DonateMoney(ctx context.Context, identity model.Identity, draft model.MonetaryDraft) (*model.Donation, error) {
	if err := authorize(identity, model.RoleDonor); err != nil {
		return nil, err
	}
	if draft.Amount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	address := sanitize.Text(draft.Address)
	if address == "" {
		return nil, domainErrors.ErrInvalidDonation
	}

	donation, err := u.donations.Create(ctx, model.Donation{
		DonorID:   identity.UserID,
		Type:      model.DonationTypeMonetary,
		Amount:    draft.Amount,
		Address:   address,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create monetary donation: %w", err)
	}
	u.recorder.DonationCreated(model.DonationTypeMonetary)
	return donation, nil
}

// DonateFood records a food donation open for pickup.
func (u *DonationUseCase) DonateFood(ctx context.Context, identity model.Identity, draft model.FoodDraft) (*model.Donation, error) {
	if err := authorize(identity, model.RoleDonor); err != nil {
		return nil, err
	}
	item := sanitize.Text(draft.FoodItem)
	address := sanitize.Text(draft.Address)
	if item == "" || address == "" {
		return nil, domainErrors.ErrInvalidDonation
	}
	quantity := draft.Quantity
	if quantity < 1 {
		quantity = 1
	}

	donation, err := u.donations.Create(ctx, model.Donation{
		DonorID:   identity.UserID,
		Type:      model.DonationTypeFood,
		FoodItem:  item,
		Quantity:  quantity,
		Phone:     sanitize.Text(draft.Phone),
		Address:   address,
		Status:    model.DonationStatusAvailable,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create food donation: %w", err)
	}
	u.recorder.DonationCreated(model.DonationTypeFood)
	return donation, nil
}

// Board returns every available food donation and the caller's donations
// accepted within the last acceptedListWindow.
func (u *DonationUseCase) Board(ctx context.Context, identity model.Identity) (*model.NGOBoard, error) {
	if err := authorize(identity, model.RoleNGO); err != nil {
		return nil, err
	}

	available, err := u.donations.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available donations: %w", err)
	}
	since := u.now().UTC().Add(-acceptedListWindow)
	accepted, err := u.donations.ListAcceptedBy(ctx, identity.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("list accepted donations: %w", err)
	}
	return &model.NGOBoard{Available: available, Accepted: accepted}, nil
}

// Accept moves an available food donation to accepted by the calling NGO.
// Notifications are queued after the transition is stored.
func (u *DonationUseCase) Accept(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	if err := authorize(identity, model.RoleNGO); err != nil {
		return nil, err
	}
	donationID = strings.TrimSpace(donationID)
	if donationID == "" {
		return nil, domainErrors.ErrNotFound
	}

	donation, err := u.donations.Accept(ctx, donationID, identity.UserID, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("accept donation %s: %w", donationID, err)
	}
	u.recorder.DonationTransition(model.DonationStatusAccepted)
	u.notifier.DonationAccepted(*donation)
	return donation, nil
}

// Complete moves a donation accepted by the calling NGO to completed.
func (u *DonationUseCase) Complete(ctx context.Context, identity model.Identity, donationID string) (*model.Donation, error) {
	if err := authorize(identity, model.RoleNGO); err != nil {
		return nil, err
	}
	donationID = strings.TrimSpace(donationID)
	if donationID == "" {
		return nil, domainErrors.ErrNotFound
	}

	donation, err := u.donations.Complete(ctx, donationID, identity.UserID, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete donation %s: %w", donationID, err)
	}
	u.recorder.DonationTransition(model.DonationStatusCompleted)
	u.notifier.DonationCompleted(*donation)
	return donation, nil
}

// Overdue lists accepted donations whose pickup deadline has passed.
func (u *DonationUseCase) Overdue(ctx context.Context) ([]model.Donation, error) {
	donations, err := u.donations.ListOverdue(ctx, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list overdue donations: %w", err)
	}
	return donations, nil
}
