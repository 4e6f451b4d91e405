package dto

import "time"

// MoneyDonationRequest is the monetary donation form.
type MoneyDonationRequest struct {
	Name    string  `json:"name" form:"name"`
	Address string  `json:"address" form:"address"`
	Amount  Lenient `json:"amount" form:"amount"`
}

// FoodDonationRequest is the food donation form.
type FoodDonationRequest struct {
	Name     string  `json:"name" form:"name"`
	Address  string  `json:"address" form:"address"`
	FoodItem string  `json:"foodItem" form:"foodItem"`
	Quantity Lenient `json:"quantity" form:"quantity"`
	Phone    string  `json:"phone" form:"phone"`
}

// TransitionRequest names the donation an NGO acts on.
type TransitionRequest struct {
	DonationID string `json:"donationId" form:"donationId"`
}

// DonationResponse describes a single donation.
type DonationResponse struct {
	ID                     string     `json:"id"`
	Type                   string     `json:"type"`
	Amount                 int64      `json:"amount,omitempty"`
	FoodItem               string     `json:"foodItem,omitempty"`
	Quantity               int        `json:"quantity,omitempty"`
	Phone                  string     `json:"phone,omitempty"`
	Address                string     `json:"address"`
	Status                 string     `json:"status,omitempty"`
	AcceptedBy             string     `json:"acceptedBy,omitempty"`
	AcceptedAt             *time.Time `json:"acceptedAt,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate,omitempty"`
	CompletedAt            *time.Time `json:"completedAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// NGOBoardResponse lists donations open for pickup and the caller's accepted ones.
type NGOBoardResponse struct {
	AvailableDonations []DonationResponse `json:"availableDonations"`
	AcceptedDonations  []DonationResponse `json:"acceptedDonations"`
}

// DonorOverviewResponse is the donor dashboard.
type DonorOverviewResponse struct {
	Donations       []DonationResponse `json:"donations"`
	TotalPoints     int64              `json:"totalPoints"`
	AvailablePoints int64              `json:"availablePoints"`
	Coupons         []CouponResponse   `json:"coupons"`
}

// SuccessResponse acknowledges a lifecycle transition.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse carries a lifecycle failure.
type MessageResponse struct {
	Message string `json:"message"`
}
