package test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int
	Err   error
	mu    sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = fmt.Sprintf("user-%d", s.Next)
	s.Next++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

// Put stores a user as is.
func (s *UserRepositoryStub) Put(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// DonationRepositoryStub is an in-memory donation store with the same
// conditional transition rules as the real adapters. Fn overrides win.
type DonationRepositoryStub struct {
	CreateFn      func(context.Context, model.Donation) (*model.Donation, error)
	ListByDonorFn func(context.Context, string) ([]model.Donation, error)
	AcceptFn      func(context.Context, string, string, time.Time) (*model.Donation, error)
	CompleteFn    func(context.Context, string, string, time.Time) (*model.Donation, error)
	Err           error

	mu    sync.Mutex
	items map[string]*model.Donation
	next  int
}

// NewDonationRepositoryStub constructs an empty store.
func NewDonationRepositoryStub() *DonationRepositoryStub {
	return &DonationRepositoryStub{items: make(map[string]*model.Donation)}
}

// Put stores a donation as is and returns its id.
func (s *DonationRepositoryStub) Put(d model.Donation) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = make(map[string]*model.Donation)
	}
	if d.ID == "" {
		s.next++
		d.ID = fmt.Sprintf("donation-%d", s.next)
	}
	stored := d
	s.items[d.ID] = &stored
	return d.ID
}

// Get returns a copy of the stored donation.
func (s *DonationRepositoryStub) Get(id string) (model.Donation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.items[id]
	if !ok {
		return model.Donation{}, false
	}
	return *d, true
}

func (s *DonationRepositoryStub) Create(ctx context.Context, d model.Donation) (*model.Donation, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, d)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	d.ID = ""
	d.ID = s.Put(d)
	return &d, nil
}

func (s *DonationRepositoryStub) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	d, ok := s.Get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &d, nil
}

func (s *DonationRepositoryStub) filter(keep func(model.Donation) bool, less func(a, b model.Donation) bool) []model.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Donation
	for _, d := range s.items {
		if keep(*d) {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func newestCreated(a, b model.Donation) bool { return a.CreatedAt.After(b.CreatedAt) }

func (s *DonationRepositoryStub) ListByDonor(ctx context.Context, donorID string) ([]model.Donation, error) {
	if s.ListByDonorFn != nil {
		return s.ListByDonorFn(ctx, donorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(d model.Donation) bool { return d.DonorID == donorID }, newestCreated), nil
}

func (s *DonationRepositoryStub) ListAvailable(ctx context.Context) ([]model.Donation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(d model.Donation) bool {
		return d.Type == model.DonationTypeFood && d.Status == model.DonationStatusAvailable
	}, newestCreated), nil
}

func (s *DonationRepositoryStub) ListAcceptedBy(ctx context.Context, ngoID string, since time.Time) ([]model.Donation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(d model.Donation) bool {
		return d.Type == model.DonationTypeFood &&
			d.Status == model.DonationStatusAccepted &&
			d.AcceptedBy == ngoID &&
			d.AcceptedAt != nil && !d.AcceptedAt.Before(since)
	}, func(a, b model.Donation) bool { return a.AcceptedAt.After(*b.AcceptedAt) }), nil
}

func (s *DonationRepositoryStub) ListOverdue(ctx context.Context, now time.Time) ([]model.Donation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.filter(func(d model.Donation) bool { return d.Overdue(now) }, func(a, b model.Donation) bool {
		return a.ExpectedCompletionDate.Before(*b.ExpectedCompletionDate)
	}), nil
}

func (s *DonationRepositoryStub) Accept(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, id, ngoID, at)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if d.Type != model.DonationTypeFood || d.Status != model.DonationStatusAvailable {
		return nil, domainErrors.ErrInvalidState
	}
	expected := model.ExpectedCompletion(at)
	d.Status = model.DonationStatusAccepted
	d.AcceptedBy = ngoID
	d.AcceptedAt = &at
	d.ExpectedCompletionDate = &expected
	cp := *d
	return &cp, nil
}

func (s *DonationRepositoryStub) Complete(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id, ngoID, at)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if d.Status != model.DonationStatusAccepted {
		return nil, domainErrors.ErrInvalidState
	}
	if d.AcceptedBy != ngoID {
		return nil, domainErrors.ErrForbidden
	}
	d.Status = model.DonationStatusCompleted
	d.CompletedAt = &at
	cp := *d
	return &cp, nil
}

// CouponRepositoryStub keeps coupons in memory and issues them under a lock.
type CouponRepositoryStub struct {
	IssueFn func(context.Context, model.Coupon, int64) (*model.Coupon, int64, error)
	Err     error

	mu      sync.Mutex
	coupons []model.Coupon
	codes   map[string]struct{}
}

// NewCouponRepositoryStub constructs an empty store.
func NewCouponRepositoryStub() *CouponRepositoryStub {
	return &CouponRepositoryStub{codes: make(map[string]struct{})}
}

func (s *CouponRepositoryStub) Issue(ctx context.Context, c model.Coupon, earned int64) (*model.Coupon, int64, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, c, earned)
	}
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codes == nil {
		s.codes = make(map[string]struct{})
	}
	var redeemed int64
	for _, existing := range s.coupons {
		if existing.DonorID == c.DonorID {
			redeemed++
		}
	}
	if earned-redeemed < 1 {
		return nil, redeemed, domainErrors.ErrInsufficientPoints
	}
	if _, dup := s.codes[c.Code]; dup {
		return nil, redeemed, fmt.Errorf("duplicate coupon code %s", c.Code)
	}
	c.ID = fmt.Sprintf("coupon-%d", len(s.coupons)+1)
	s.codes[c.Code] = struct{}{}
	s.coupons = append(s.coupons, c)
	return &c, redeemed + 1, nil
}

func (s *CouponRepositoryStub) ListByDonor(ctx context.Context, donorID string) ([]model.Coupon, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Coupon
	for i := len(s.coupons) - 1; i >= 0; i-- {
		if s.coupons[i].DonorID == donorID {
			out = append(out, s.coupons[i])
		}
	}
	return out, nil
}

// RepositoryFactoryStub bundles in-memory repositories.
type RepositoryFactoryStub struct {
	UserRepo     *UserRepositoryStub
	DonationRepo *DonationRepositoryStub
	CouponRepo   *CouponRepositoryStub
}

// NewRepositoryFactoryStub wires fresh in-memory repositories.
func NewRepositoryFactoryStub() *RepositoryFactoryStub {
	return &RepositoryFactoryStub{
		UserRepo:     NewUserRepositoryStub(),
		DonationRepo: NewDonationRepositoryStub(),
		CouponRepo:   NewCouponRepositoryStub(),
	}
}

func (f *RepositoryFactoryStub) Users() repository.UserRepository         { return f.UserRepo }
func (f *RepositoryFactoryStub) Donations() repository.DonationRepository { return f.DonationRepo }
func (f *RepositoryFactoryStub) Coupons() repository.CouponRepository     { return f.CouponRepo }

var (
	_ repository.UserRepository     = (*UserRepositoryStub)(nil)
	_ repository.DonationRepository = (*DonationRepositoryStub)(nil)
	_ repository.CouponRepository   = (*CouponRepositoryStub)(nil)
	_ repository.Factory            = (*RepositoryFactoryStub)(nil)
)
