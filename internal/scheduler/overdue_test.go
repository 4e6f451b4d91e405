package scheduler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

type sourceStub struct {
	mu        sync.Mutex
	donations []model.Donation
	err       error
	calls     int
}

func (s *sourceStub) Overdue(context.Context) ([]model.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.donations, s.err
}

func (s *sourceStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type gaugeStub struct {
	mu    sync.Mutex
	value int
	set   bool
}

func (g *gaugeStub) SetOverdue(count int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = count
	g.set = true
}

func TestRunReportsOverdueDonations(t *testing.T) {
	deadline := time.Now().Add(-time.Hour)
	source := &sourceStub{donations: []model.Donation{
		{ID: "d1", AcceptedBy: "ngo-1", Status: model.DonationStatusAccepted, ExpectedCompletionDate: &deadline},
		{ID: "d2", AcceptedBy: "ngo-2", Status: model.DonationStatusAccepted},
	}}
	gauge := &gaugeStub{}
	var buf bytes.Buffer
	sweep := NewOverdueSweep("@every 1h", source, gauge, slog.New(slog.NewJSONHandler(&buf, nil)))

	n, err := sweep.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || gauge.value != 2 {
		t.Fatalf("expected 2 overdue, got n=%d gauge=%d", n, gauge.value)
	}
	if strings.Count(buf.String(), "donation pickup overdue") != 2 {
		t.Fatalf("expected a warning per donation, got %s", buf.String())
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	source := &sourceStub{err: errors.New("db down")}
	gauge := &gaugeStub{}
	sweep := NewOverdueSweep("@every 1h", source, gauge, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	if _, err := sweep.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if gauge.set {
		t.Fatal("expected gauge to stay untouched on failure")
	}
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	sweep := NewOverdueSweep("not a schedule", &sourceStub{}, nil, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err := sweep.Start(); err == nil {
		t.Fatal("expected error")
	}
}

func TestLifecycleRunsSweepOnSchedule(t *testing.T) {
	source := &sourceStub{}
	sweep := NewOverdueSweep("* * * * * *", source, &gaugeStub{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, sweep)
	lc.RequireStart()

	deadline := time.After(3 * time.Second)
	for source.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for sweep")
		case <-time.After(20 * time.Millisecond):
		}
	}
	lc.RequireStop()
}
