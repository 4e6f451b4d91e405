package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	testhelpers "github.com/polkiloo/foodbridge/internal/test"
)

var (
	ngoX = model.Identity{UserID: "ngo-x", Role: model.RoleNGO}
	ngoY = model.Identity{UserID: "ngo-y", Role: model.RoleNGO}
)

type donationFixture struct {
	uc       *DonationUseCase
	store    *testhelpers.DonationRepositoryStub
	notifier *testhelpers.NotifierStub
	recorder *testhelpers.RecorderStub
	clock    time.Time
}

func newDonationFixture() *donationFixture {
	f := &donationFixture{
		store:    testhelpers.NewDonationRepositoryStub(),
		notifier: &testhelpers.NotifierStub{},
		recorder: testhelpers.NewRecorderStub(),
		clock:    time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC),
	}
	f.uc = NewDonationUseCase(f.store, f.notifier, f.recorder)
	f.uc.now = func() time.Time { return f.clock }
	return f
}

func (f *donationFixture) availableFood() string {
	return f.store.Put(model.Donation{
		DonorID:   donor.UserID,
		Type:      model.DonationTypeFood,
		FoodItem:  "Rice",
		Quantity:  2,
		Address:   "Main st 1",
		Status:    model.DonationStatusAvailable,
		CreatedAt: f.clock.Add(-time.Hour),
	})
}

func TestDonateMoney(t *testing.T) {
	f := newDonationFixture()

	donation, err := f.uc.DonateMoney(context.Background(), donor, model.MonetaryDraft{Amount: 250, Address: " Main st 1 "})
	if err != nil {
		t.Fatalf("donate money returned error: %v", err)
	}
	if donation.Type != model.DonationTypeMonetary || donation.Status != "" {
		t.Fatalf("unexpected donation %+v", donation)
	}
	if donation.Address != "Main st 1" || !donation.CreatedAt.Equal(f.clock) {
		t.Fatalf("unexpected address or timestamp: %+v", donation)
	}
	if f.recorder.Created[model.DonationTypeMonetary] != 1 {
		t.Fatal("expected monetary donation counter")
	}
}

func TestDonateMoneyValidation(t *testing.T) {
	f := newDonationFixture()
	cases := []struct {
		name     string
		identity model.Identity
		draft    model.MonetaryDraft
		want     error
	}{
		{"anonymous", model.Identity{}, model.MonetaryDraft{Amount: 1, Address: "a"}, domainErrors.ErrUnauthenticated},
		{"ngo", ngoX, model.MonetaryDraft{Amount: 1, Address: "a"}, domainErrors.ErrForbidden},
		{"negative", donor, model.MonetaryDraft{Amount: -1, Address: "a"}, domainErrors.ErrInvalidAmount},
		{"no address", donor, model.MonetaryDraft{Amount: 1, Address: "  "}, domainErrors.ErrInvalidDonation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.DonateMoney(context.Background(), tc.identity, tc.draft); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDonateFood(t *testing.T) {
	f := newDonationFixture()

	donation, err := f.uc.DonateFood(context.Background(), donor, model.FoodDraft{FoodItem: "Bread", Quantity: 0, Phone: "555", Address: "Main st 1"})
	if err != nil {
		t.Fatalf("donate food returned error: %v", err)
	}
	if donation.Status != model.DonationStatusAvailable {
		t.Fatalf("expected available, got %q", donation.Status)
	}
	if donation.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", donation.Quantity)
	}
	if donation.AcceptedBy != "" || donation.AcceptedAt != nil || donation.CompletedAt != nil {
		t.Fatalf("new donation must not carry transition fields: %+v", donation)
	}

	if _, err := f.uc.DonateFood(context.Background(), donor, model.FoodDraft{Address: "Main st 1"}); !errors.Is(err, domainErrors.ErrInvalidDonation) {
		t.Fatalf("expected invalid donation without food item, got %v", err)
	}

	f.store.Err = fmt.Errorf("db down")
	if _, err := f.uc.DonateFood(context.Background(), donor, model.FoodDraft{FoodItem: "Bread", Address: "a"}); err == nil {
		t.Fatal("expected store error")
	}
}

func TestAcceptDonation(t *testing.T) {
	f := newDonationFixture()
	id := f.availableFood()

	accepted, err := f.uc.Accept(context.Background(), ngoX, id)
	if err != nil {
		t.Fatalf("accept returned error: %v", err)
	}
	if accepted.Status != model.DonationStatusAccepted || accepted.AcceptedBy != ngoX.UserID {
		t.Fatalf("unexpected donation after accept: %+v", accepted)
	}
	if !accepted.AcceptedAt.Equal(f.clock) {
		t.Fatalf("expected acceptedAt %s, got %s", f.clock, accepted.AcceptedAt)
	}
	if !accepted.ExpectedCompletionDate.Equal(f.clock.AddDate(0, 0, 1)) {
		t.Fatalf("expected completion one day later, got %s", accepted.ExpectedCompletionDate)
	}
	if _, n, _ := f.notifier.Counts(); n != 1 {
		t.Fatalf("expected accept notification, got %d", n)
	}

	if _, err := f.uc.Accept(context.Background(), ngoY, id); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state on second accept, got %v", err)
	}
	if _, n, _ := f.notifier.Counts(); n != 1 {
		t.Fatalf("failed accept must not notify, got %d", n)
	}
}

func TestAcceptDonationErrors(t *testing.T) {
	f := newDonationFixture()
	monetary := f.store.Put(model.Donation{DonorID: donor.UserID, Type: model.DonationTypeMonetary, Amount: 100})

	cases := []struct {
		name     string
		identity model.Identity
		id       string
		want     error
	}{
		{"anonymous", model.Identity{}, "x", domainErrors.ErrUnauthenticated},
		{"donor", donor, "x", domainErrors.ErrForbidden},
		{"empty id", ngoX, " ", domainErrors.ErrNotFound},
		{"unknown id", ngoX, "missing", domainErrors.ErrNotFound},
		{"monetary", ngoX, monetary, domainErrors.ErrInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.Accept(context.Background(), tc.identity, tc.id); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAcceptDonationConcurrentSingleWinner(t *testing.T) {
	f := newDonationFixture()
	id := f.availableFood()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ngo := model.Identity{UserID: fmt.Sprintf("ngo-%d", i), Role: model.RoleNGO}
			if _, err := f.uc.Accept(context.Background(), ngo, id); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
}

func TestCompleteDonation(t *testing.T) {
	f := newDonationFixture()
	id := f.availableFood()
	if _, err := f.uc.Accept(context.Background(), ngoX, id); err != nil {
		t.Fatalf("accept returned error: %v", err)
	}

	if _, err := f.uc.Complete(context.Background(), ngoY, id); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for other ngo, got %v", err)
	}

	f.clock = f.clock.Add(3 * time.Hour)
	completed, err := f.uc.Complete(context.Background(), ngoX, id)
	if err != nil {
		t.Fatalf("complete returned error: %v", err)
	}
	if completed.Status != model.DonationStatusCompleted || !completed.CompletedAt.Equal(f.clock) {
		t.Fatalf("unexpected donation after complete: %+v", completed)
	}
	if _, _, n := f.notifier.Counts(); n != 1 {
		t.Fatalf("expected completion notification, got %d", n)
	}
	if f.recorder.Transitions[model.DonationStatusCompleted] != 1 {
		t.Fatal("expected completion counter")
	}

	if _, err := f.uc.Complete(context.Background(), ngoX, id); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state on repeated complete, got %v", err)
	}
}

func TestCompleteDonationFromAvailable(t *testing.T) {
	f := newDonationFixture()
	id := f.availableFood()

	if _, err := f.uc.Complete(context.Background(), ngoX, id); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if _, err := f.uc.Complete(context.Background(), ngoX, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.uc.Complete(context.Background(), donor, id); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for donor, got %v", err)
	}
}

func TestBoardHidesAcceptedOlderThanWindow(t *testing.T) {
	f := newDonationFixture()
	open := f.availableFood()

	recent := f.clock.Add(-2 * time.Hour)
	stale := f.clock.Add(-30 * time.Hour)
	recentDeadline := model.ExpectedCompletion(recent)
	staleDeadline := model.ExpectedCompletion(stale)
	f.store.Put(model.Donation{ID: "recent", Type: model.DonationTypeFood, Status: model.DonationStatusAccepted, AcceptedBy: ngoX.UserID, AcceptedAt: &recent, ExpectedCompletionDate: &recentDeadline})
	f.store.Put(model.Donation{ID: "stale", Type: model.DonationTypeFood, Status: model.DonationStatusAccepted, AcceptedBy: ngoX.UserID, AcceptedAt: &stale, ExpectedCompletionDate: &staleDeadline})
	f.store.Put(model.Donation{ID: "other", Type: model.DonationTypeFood, Status: model.DonationStatusAccepted, AcceptedBy: ngoY.UserID, AcceptedAt: &recent, ExpectedCompletionDate: &recentDeadline})

	board, err := f.uc.Board(context.Background(), ngoX)
	if err != nil {
		t.Fatalf("board returned error: %v", err)
	}
	if len(board.Available) != 1 || board.Available[0].ID != open {
		t.Fatalf("unexpected available list: %+v", board.Available)
	}
	if len(board.Accepted) != 1 || board.Accepted[0].ID != "recent" {
		t.Fatalf("expected only the recent acceptance, got %+v", board.Accepted)
	}

	overdue, err := f.uc.Overdue(context.Background())
	if err != nil {
		t.Fatalf("overdue returned error: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != "stale" {
		t.Fatalf("expected stale donation to be overdue, got %+v", overdue)
	}

	if _, err := f.uc.Board(context.Background(), donor); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for donor, got %v", err)
	}
}
