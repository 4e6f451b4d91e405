package model

import "time"

// DonationType distinguishes money from food donations.
type DonationType string

const (
	DonationTypeMonetary DonationType = "monetary"
	DonationTypeFood     DonationType = "food"
)

// DonationStatus is the lifecycle state of a food donation.
// Monetary donations carry an empty status.
type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusAccepted  DonationStatus = "accepted"
	DonationStatusCompleted DonationStatus = "completed"
)

// CompletionWindow is the time an NGO has to pick up an accepted donation.
const CompletionWindow = 24 * time.Hour

// Donation is a single monetary or food contribution made by a donor.
type Donation struct {
	ID                     string
	DonorID                string
	Type                   DonationType
	Amount                 int64
	FoodItem               string
	Quantity               int
	Phone                  string
	Address                string
	Status                 DonationStatus
	AcceptedBy             string
	AcceptedAt             *time.Time
	ExpectedCompletionDate *time.Time
	CompletedAt            *time.Time
	CreatedAt              time.Time
}

// ExpectedCompletion returns the pickup deadline for a donation accepted at the given time.
func ExpectedCompletion(acceptedAt time.Time) time.Time {
	return acceptedAt.AddDate(0, 0, 1)
}

// Overdue reports whether an accepted donation has passed its pickup deadline.
func (d Donation) Overdue(now time.Time) bool {
	return d.Status == DonationStatusAccepted &&
		d.ExpectedCompletionDate != nil &&
		now.After(*d.ExpectedCompletionDate)
}
