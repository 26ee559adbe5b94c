package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/services"
	"github.com/jobmate/engine-service/internal/utils"
)

type InsightHandler struct {
	svc services.InsightService
}

func NewInsightHandler(svc services.InsightService) *InsightHandler {
	return &InsightHandler{svc: svc}
}

type compatibilityRequest struct {
	// SpecialistID defaults to the caller when omitted, for the common
	// "my dashboard" case.
	SpecialistID string   `json:"specialist_id,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	JobIDs       []string `json:"job_ids,omitempty"`
	Limit        int      `json:"limit,omitempty"`
}

func (h *InsightHandler) Compatibility(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req compatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InsightHandler.Compatibility", "invalid request body", err))
		return
	}

	specialistID := req.SpecialistID
	if specialistID == "" {
		specialistID = userID
	}

	out, err := h.svc.Compatibility(c.Request.Context(), specialistID, req.Requirements, req.JobIDs, req.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
