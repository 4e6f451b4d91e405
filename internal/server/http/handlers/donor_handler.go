package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/server/http/dto"
)

const donationsPath = "/donations"

// DonorHandler manages donation intake, the donor dashboard and coupons.
type DonorHandler struct {
	facade DonorFacade
}

// NewDonorHandler constructs DonorHandler.
func NewDonorHandler(facade DonorFacade) *DonorHandler {
	return &DonorHandler{facade: facade}
}

// DonateMoney handles POST /donate/money.
func (h *DonorHandler) DonateMoney(c *gin.Context) {
	identity, ok := formCaller(c, model.RoleDonor)
	if !ok {
		return
	}

	var req dto.MoneyDonationRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectHome(c)
		return
	}

	_, err := h.facade.DonateMoney(c.Request.Context(), identity, model.MonetaryDraft{
		Amount:  req.Amount.Amount(),
		Address: req.Address,
	})
	if err != nil {
		formFailed(c, err)
		return
	}
	c.Redirect(http.StatusFound, donationsPath)
}

// DonateFood handles POST /donate/food.
func (h *DonorHandler) DonateFood(c *gin.Context) {
	identity, ok := formCaller(c, model.RoleDonor)
	if !ok {
		return
	}

	var req dto.FoodDonationRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectHome(c)
		return
	}

	_, err := h.facade.DonateFood(c.Request.Context(), identity, model.FoodDraft{
		FoodItem: req.FoodItem,
		Quantity: req.Quantity.Quantity(),
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		formFailed(c, err)
		return
	}
	c.Redirect(http.StatusFound, donationsPath)
}

// Donations handles GET /donations.
func (h *DonorHandler) Donations(c *gin.Context) {
	identity, ok := formCaller(c, model.RoleDonor)
	if !ok {
		return
	}

	overview, err := h.facade.Overview(c.Request.Context(), identity)
	if err != nil {
		formFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DonorOverviewResponse{
		Donations:       toDonationResponses(overview.Donations),
		TotalPoints:     overview.TotalPoints,
		AvailablePoints: overview.AvailablePoints,
		Coupons:         toCouponResponses(overview.Coupons),
	})
}

// Redeem handles POST /redeem.
func (h *DonorHandler) Redeem(c *gin.Context) {
	identity := CurrentIdentity(c)
	if identity.UserID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return
	}
	if !identity.Is(model.RoleDonor) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
		return
	}

	var req dto.RedeemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request"})
		return
	}

	redemption, err := h.facade.Redeem(c.Request.Context(), identity, req.RestaurantID, req.RestaurantName)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Not enough points"})
		case errors.Is(err, domainErrors.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to redeem"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{
		Success:        true,
		Code:           redemption.Coupon.Code,
		RestaurantName: redemption.Coupon.RestaurantName,
		Remaining:      redemption.Remaining,
	})
}

// formCaller gates browser pages: anonymous callers go home, wrong roles get 403.
func formCaller(c *gin.Context, role model.Role) (model.Identity, bool) {
	identity := CurrentIdentity(c)
	if identity.UserID == "" {
		redirectHome(c)
		return identity, false
	}
	if !identity.Is(role) {
		c.String(http.StatusForbidden, "Forbidden")
		return identity, false
	}
	return identity, true
}

// formFailed degrades every browser page failure to a redirect home.
func formFailed(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrForbidden) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	_ = c.Error(err)
	redirectHome(c)
}
