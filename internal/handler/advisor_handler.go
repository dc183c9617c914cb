package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// ExpandKeywordsRequest carries the shorthand to expand into a full comment.
type ExpandKeywordsRequest struct {
	Keywords string `json:"keywords" binding:"required"`
}

// AdvisorHandler exposes AI drafting endpoints.
type AdvisorHandler struct {
	advisor *service.AdvisorService
}

// NewAdvisorHandler constructs AdvisorHandler.
func NewAdvisorHandler(advisor *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor}
}

// Draft godoc
// @Summary Draft a report-card comment for a student
// @Tags Advisor
// @Accept json
// @Produce json
// @Param payload body service.DraftRequest true "Draft payload"
// @Success 200 {object} response.Envelope
// @Router /advisor/draft [post]
func (h *AdvisorHandler) Draft(c *gin.Context) {
	var req service.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.advisor.Draft(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// ExpandKeywords godoc
// @Summary Expand shorthand keywords into a full Vietnamese comment
// @Tags Advisor
// @Accept json
// @Produce json
// @Param payload body ExpandKeywordsRequest true "Keywords payload"
// @Success 200 {object} response.Envelope
// @Router /advisor/expand [post]
func (h *AdvisorHandler) ExpandKeywords(c *gin.Context) {
	var req ExpandKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	text, err := h.advisor.ExpandKeywords(c.Request.Context(), req.Keywords)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"text": text})
}
