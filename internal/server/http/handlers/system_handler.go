package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodbridge/internal/server/http/dto"
)

// SystemHandler serves health probes and the help widget.
type SystemHandler struct {
	facade SystemFacade
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade SystemFacade) *SystemHandler {
	return &SystemHandler{facade: facade}
}

// Health handles GET /healthz.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Chat handles POST /api/chatbot.
func (h *SystemHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Message = ""
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: h.facade.ChatReply(req.Message)})
}
