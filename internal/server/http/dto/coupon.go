package dto

import "time"

// RedeemRequest picks the restaurant a coupon is issued for.
type RedeemRequest struct {
	RestaurantID   string `json:"restaurantId" form:"restaurantId"`
	RestaurantName string `json:"restaurantName" form:"restaurantName"`
}

// RedeemResponse describes a freshly issued coupon.
type RedeemResponse struct {
	Success        bool   `json:"success"`
	Code           string `json:"code"`
	RestaurantName string `json:"restaurantName"`
	Remaining      int64  `json:"remaining"`
}

// CouponResponse describes a coupon in the donor history.
type CouponResponse struct {
	Code           string    `json:"code"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	IssuedAt       time.Time `json:"issuedAt"`
	Used           bool      `json:"used"`
}

// ErrorResponse is the redeem failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
