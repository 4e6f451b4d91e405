package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

const sweepTimeout = 2 * time.Minute

// OverdueSource lists accepted donations past their pickup deadline.
type OverdueSource interface {
	Overdue(ctx context.Context) ([]model.Donation, error)
}

// Gauge publishes the size of the last sweep.
type Gauge interface {
	SetOverdue(count int)
}

// OverdueSweep periodically flags accepted donations that were not picked up
// within the completion window. It only reports; statuses are left untouched.
type OverdueSweep struct {
	cron     *cron.Cron
	schedule string
	source   OverdueSource
	gauge    Gauge
	logger   *slog.Logger
}

// NewOverdueSweep builds a sweep running on a six-field cron schedule in UTC.
func NewOverdueSweep(schedule string, source OverdueSource, gauge Gauge, logger *slog.Logger) *OverdueSweep {
	return &OverdueSweep{
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		schedule: schedule,
		source:   source,
		gauge:    gauge,
		logger:   logger,
	}
}

// Start registers the sweep and starts the cron runner.
func (s *OverdueSweep) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("overdue sweep panicked", slog.Any("panic", r))
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			s.logger.Warn("overdue sweep failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule overdue sweep %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("overdue sweep scheduled", slog.String("schedule", s.schedule))
	return nil
}

// Stop waits for a running sweep for up to two seconds.
func (s *OverdueSweep) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(2 * time.Second):
	}
}

// Run performs one sweep and returns the number of overdue donations.
func (s *OverdueSweep) Run(ctx context.Context) (int, error) {
	overdue, err := s.source.Overdue(ctx)
	if err != nil {
		return 0, err
	}
	for _, d := range overdue {
		attrs := []any{
			slog.String("donation_id", d.ID),
			slog.String("ngo_id", d.AcceptedBy),
		}
		if d.ExpectedCompletionDate != nil {
			attrs = append(attrs, slog.Time("expected_completion", *d.ExpectedCompletionDate))
		}
		s.logger.Warn("donation pickup overdue", attrs...)
	}
	if s.gauge != nil {
		s.gauge.SetOverdue(len(overdue))
	}
	s.logger.Debug("overdue sweep done", slog.Int("overdue", len(overdue)))
	return len(overdue), nil
}
