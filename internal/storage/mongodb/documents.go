package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	Role         string             `bson:"role"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		Role:         model.Role(d.Role),
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

type donationDocument struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	DonorID                string             `bson:"donorId"`
	Type                   string             `bson:"type"`
	Amount                 int64              `bson:"amount"`
	FoodItem               string             `bson:"foodItem,omitempty"`
	Quantity               int                `bson:"quantity,omitempty"`
	Phone                  string             `bson:"phone,omitempty"`
	Address                string             `bson:"address"`
	Status                 string             `bson:"status,omitempty"`
	AcceptedBy             string             `bson:"acceptedBy,omitempty"`
	AcceptedAt             *time.Time         `bson:"acceptedAt,omitempty"`
	ExpectedCompletionDate *time.Time         `bson:"expectedCompletionDate,omitempty"`
	CompletedAt            *time.Time         `bson:"completedAt,omitempty"`
	CreatedAt              time.Time          `bson:"createdAt"`
}

func newDonationDocument(d model.Donation) donationDocument {
	return donationDocument{
		DonorID:                d.DonorID,
		Type:                   string(d.Type),
		Amount:                 d.Amount,
		FoodItem:               d.FoodItem,
		Quantity:               d.Quantity,
		Phone:                  d.Phone,
		Address:                d.Address,
		Status:                 string(d.Status),
		AcceptedBy:             d.AcceptedBy,
		AcceptedAt:             d.AcceptedAt,
		ExpectedCompletionDate: d.ExpectedCompletionDate,
		CompletedAt:            d.CompletedAt,
		CreatedAt:              d.CreatedAt,
	}
}

func (d donationDocument) toModel() model.Donation {
	return model.Donation{
		ID:                     d.ID.Hex(),
		DonorID:                d.DonorID,
		Type:                   model.DonationType(d.Type),
		Amount:                 d.Amount,
		FoodItem:               d.FoodItem,
		Quantity:               d.Quantity,
		Phone:                  d.Phone,
		Address:                d.Address,
		Status:                 model.DonationStatus(d.Status),
		AcceptedBy:             d.AcceptedBy,
		AcceptedAt:             d.AcceptedAt,
		ExpectedCompletionDate: d.ExpectedCompletionDate,
		CompletedAt:            d.CompletedAt,
		CreatedAt:              d.CreatedAt,
	}
}

type couponDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Code           string             `bson:"code"`
	DonorID        string             `bson:"donorId"`
	RestaurantID   string             `bson:"restaurantId"`
	RestaurantName string             `bson:"restaurantName"`
	IssuedAt       time.Time          `bson:"issuedAt"`
	Used           bool               `bson:"used"`
}

func (d couponDocument) toModel() model.Coupon {
	return model.Coupon{
		ID:             d.ID.Hex(),
		Code:           d.Code,
		DonorID:        d.DonorID,
		RestaurantID:   d.RestaurantID,
		RestaurantName: d.RestaurantName,
		IssuedAt:       d.IssuedAt,
		Used:           d.Used,
	}
}

// redemptionCounter tracks how many coupons a donor has been granted.
type redemptionCounter struct {
	DonorID  string `bson:"_id"`
	Redeemed int64  `bson:"redeemed"`
}
