package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/server/http/dto"
)

// NGOHandler manages the pickup board and lifecycle transitions.
type NGOHandler struct {
	facade NGOFacade
}

// NewNGOHandler constructs NGOHandler.
func NewNGOHandler(facade NGOFacade) *NGOHandler {
	return &NGOHandler{facade: facade}
}

// Board handles GET /donationsNGO.
func (h *NGOHandler) Board(c *gin.Context) {
	identity, ok := formCaller(c, model.RoleNGO)
	if !ok {
		return
	}

	board, err := h.facade.Board(c.Request.Context(), identity)
	if err != nil {
		formFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NGOBoardResponse{
		AvailableDonations: toDonationResponses(board.Available),
		AcceptedDonations:  toDonationResponses(board.Accepted),
	})
}

// Accept handles POST /accept-donation.
func (h *NGOHandler) Accept(c *gin.Context) {
	identity, donationID, ok := transitionCaller(c)
	if !ok {
		return
	}

	if _, err := h.facade.AcceptDonation(c.Request.Context(), identity, donationID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Donation not found"})
		case errors.Is(err, domainErrors.ErrInvalidState):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Donation is no longer available"})
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Forbidden"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to accept donation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Complete handles POST /complete-donation.
func (h *NGOHandler) Complete(c *gin.Context) {
	identity, donationID, ok := transitionCaller(c)
	if !ok {
		return
	}

	if _, err := h.facade.CompleteDonation(c.Request.Context(), identity, donationID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Donation not found"})
		case errors.Is(err, domainErrors.ErrInvalidState):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Donation is not in accepted state"})
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "This donation was accepted by a different NGO"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to complete donation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func transitionCaller(c *gin.Context) (model.Identity, string, bool) {
	identity := CurrentIdentity(c)
	if identity.UserID == "" {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Not authenticated"})
		return identity, "", false
	}
	if !identity.Is(model.RoleNGO) {
		c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Forbidden"})
		return identity, "", false
	}

	var req dto.TransitionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request"})
		return identity, "", false
	}
	return identity, req.DonationID, true
}
