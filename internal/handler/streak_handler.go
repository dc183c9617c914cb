package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// StreakHandler exposes the visit streak endpoints.
type StreakHandler struct {
	streak *service.StreakService
}

// NewStreakHandler constructs StreakHandler.
func NewStreakHandler(streak *service.StreakService) *StreakHandler {
	return &StreakHandler{streak: streak}
}

// Current godoc
// @Summary Read the current visit streak
// @Tags Streak
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /streak [get]
func (h *StreakHandler) Current(c *gin.Context) {
	state, err := h.streak.Current()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Touch godoc
// @Summary Record today's visit
// @Tags Streak
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /streak/touch [post]
func (h *StreakHandler) Touch(c *gin.Context) {
	state, err := h.streak.Touch(time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}
