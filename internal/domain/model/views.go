package model

// MonetaryDraft is the donor input for a money donation.
type MonetaryDraft struct {
	Amount  int64
	Address string
}

// FoodDraft is the donor input for a food donation.
type FoodDraft struct {
	FoodItem string
	Quantity int
	Phone    string
	Address  string
}

// Registration is the input for creating an account.
type Registration struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

// DonorOverview is the donor dashboard: history, points and coupons.
type DonorOverview struct {
	Donations       []Donation
	Coupons         []Coupon
	TotalPoints     int64
	AvailablePoints int64
}

// NGOBoard lists donations open for pickup and the ones accepted by the caller.
type NGOBoard struct {
	Available []Donation
	Accepted  []Donation
}
