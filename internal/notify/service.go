package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/polkiloo/foodbridge/internal/adapter/mail"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
	"github.com/polkiloo/foodbridge/internal/worker"
)

// Queue accepts background jobs without blocking.
type Queue interface {
	Enqueue(job worker.Job) bool
}

// Renderer builds a mail message for a notification.
type Renderer interface {
	Render(n model.Notification) (mail.Message, error)
}

// Service turns business events into queued emails. Delivery failures are
// logged by the queue and never reach the request that triggered them.
type Service struct {
	users    repository.UserRepository
	renderer Renderer
	sender   mail.Sender
	queue    Queue
	logger   *slog.Logger
}

// NewService constructs the notification service.
func NewService(users repository.UserRepository, renderer Renderer, sender mail.Sender, queue Queue, logger *slog.Logger) *Service {
	return &Service{users: users, renderer: renderer, sender: sender, queue: queue, logger: logger}
}

func (s *Service) Welcome(user model.User) {
	s.queue.Enqueue(worker.Job{
		Name: "welcome:" + user.ID,
		Run: func(ctx context.Context) error {
			return s.deliver(ctx, model.Notification{
				Kind:      model.NotificationWelcome,
				To:        user.Email,
				Recipient: displayName(user),
			})
		},
	})
}

func (s *Service) DonationAccepted(d model.Donation) {
	s.enqueuePair("accepted:"+d.ID, d, model.NotificationDonorAccepted, model.NotificationNGOAccepted)
}

func (s *Service) DonationCompleted(d model.Donation) {
	s.enqueuePair("completed:"+d.ID, d, model.NotificationDonorCompleted, model.NotificationNGOCompleted)
}

// enqueuePair mails the donor and the accepting NGO about one transition.
func (s *Service) enqueuePair(name string, d model.Donation, donorKind, ngoKind model.NotificationKind) {
	s.queue.Enqueue(worker.Job{
		Name: name,
		Run: func(ctx context.Context) error {
			donor, err := s.users.GetByID(ctx, d.DonorID)
			if err != nil {
				return fmt.Errorf("load donor %s: %w", d.DonorID, err)
			}
			ngo, err := s.users.GetByID(ctx, d.AcceptedBy)
			if err != nil {
				return fmt.Errorf("load ngo %s: %w", d.AcceptedBy, err)
			}

			donation := d
			return errors.Join(
				s.deliver(ctx, model.Notification{
					Kind:        donorKind,
					To:          donor.Email,
					Recipient:   displayName(*donor),
					Counterpart: displayName(*ngo),
					Donation:    &donation,
				}),
				s.deliver(ctx, model.Notification{
					Kind:        ngoKind,
					To:          ngo.Email,
					Recipient:   displayName(*ngo),
					Counterpart: displayName(*donor),
					Donation:    &donation,
				}),
			)
		},
	})
}

func (s *Service) deliver(ctx context.Context, n model.Notification) error {
	msg, err := s.renderer.Render(n)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, msg.To, msg.Subject, msg.HTML); err != nil {
		return fmt.Errorf("send %s to %s: %w", n.Kind, msg.To, err)
	}
	s.logger.Info("notification sent", slog.String("kind", string(n.Kind)), slog.String("to", msg.To))
	return nil
}

func displayName(u model.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
