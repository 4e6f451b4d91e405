package model

import "time"

// Coupon is a restaurant voucher bought with one donor point.
type Coupon struct {
	ID             string
	Code           string
	DonorID        string
	RestaurantID   string
	RestaurantName string
	IssuedAt       time.Time
	Used           bool
}

// Redemption is the outcome of a successful coupon redeem.
type Redemption struct {
	Coupon    Coupon
	Remaining int64
}
