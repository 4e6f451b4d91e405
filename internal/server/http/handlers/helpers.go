package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/server/http/dto"
	"github.com/polkiloo/foodbridge/internal/server/http/middleware"
)

const homePath = "/"

// CurrentIdentity extracts the verified caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

// wantsJSON reports whether a browser form client asked for a JSON answer.
func wantsJSON(c *gin.Context) bool {
	if strings.EqualFold(c.GetHeader("X-Requested-With"), "XMLHttpRequest") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, homePath)
}

func toDonationResponse(d model.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:                     d.ID,
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

func toDonationResponses(items []model.Donation) []dto.DonationResponse {
	resp := make([]dto.DonationResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, toDonationResponse(d))
	}
	return resp
}

func toCouponResponses(items []model.Coupon) []dto.CouponResponse {
	resp := make([]dto.CouponResponse, 0, len(items))
	for _, c := range items {
		resp = append(resp, dto.CouponResponse{
			Code:           c.Code,
			RestaurantID:   c.RestaurantID,
			RestaurantName: c.RestaurantName,
			IssuedAt:       c.IssuedAt,
			Used:           c.Used,
		})
	}
	return resp
}
