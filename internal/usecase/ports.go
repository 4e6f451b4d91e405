package usecase

import (
	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// Notifier queues best-effort emails. Implementations must not block the caller.
type Notifier interface {
	Welcome(user model.User)
	DonationAccepted(donation model.Donation)
	DonationCompleted(donation model.Donation)
}

// Recorder receives business counters.
type Recorder interface {
	DonationCreated(kind model.DonationType)
	DonationTransition(to model.DonationStatus)
	CouponIssued()
	RedeemRejected(reason string)
}

func authorize(identity model.Identity, role model.Role) error {
	if identity.UserID == "" {
		return domainErrors.ErrUnauthenticated
	}
	if identity.Role != role {
		return domainErrors.ErrForbidden
	}
	return nil
}
