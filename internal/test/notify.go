package test

import (
	"context"
	"sync"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// NotifierStub records queued notifications.
type NotifierStub struct {
	mu        sync.Mutex
	Welcomed  []model.User
	Accepted  []model.Donation
	Completed []model.Donation
}

func (s *NotifierStub) Welcome(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Welcomed = append(s.Welcomed, user)
}

func (s *NotifierStub) DonationAccepted(d model.Donation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Accepted = append(s.Accepted, d)
}

func (s *NotifierStub) DonationCompleted(d model.Donation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Completed = append(s.Completed, d)
}

// Counts returns the number of welcome, accepted and completed notifications.
func (s *NotifierStub) Counts() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Welcomed), len(s.Accepted), len(s.Completed)
}

// RecorderStub counts business events.
type RecorderStub struct {
	mu          sync.Mutex
	Created     map[model.DonationType]int
	Transitions map[model.DonationStatus]int
	Issued      int
	Rejected    map[string]int
}

// NewRecorderStub constructs RecorderStub with initialized maps.
func NewRecorderStub() *RecorderStub {
	return &RecorderStub{
		Created:     make(map[model.DonationType]int),
		Transitions: make(map[model.DonationStatus]int),
		Rejected:    make(map[string]int),
	}
}

func (s *RecorderStub) DonationCreated(kind model.DonationType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created[kind]++
}

func (s *RecorderStub) DonationTransition(to model.DonationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Transitions[to]++
}

func (s *RecorderStub) CouponIssued() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Issued++
}

func (s *RecorderStub) RedeemRejected(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rejected[reason]++
}

// SentMessage is a message captured by SenderStub.
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// SenderStub captures outbound mail.
type SenderStub struct {
	SendFn   func(ctx context.Context, to, subject, body string) error
	mu       sync.Mutex
	Messages []SentMessage
}

func (s *SenderStub) Send(ctx context.Context, to, subject, body string) error {
	if s.SendFn != nil {
		if err := s.SendFn(ctx, to, subject, body); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, SentMessage{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a snapshot of captured messages.
func (s *SenderStub) Sent() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SentMessage, len(s.Messages))
	copy(out, s.Messages)
	return out
}
