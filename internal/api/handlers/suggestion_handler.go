package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/models"
	"github.com/jobmate/engine-service/internal/services"
	"github.com/jobmate/engine-service/internal/utils"
)

type SuggestionHandler struct {
	svc services.SuggestionService
}

func NewSuggestionHandler(svc services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

type generateSuggestionsRequest struct {
	Mode    string `json:"mode" binding:"required"`
	Context string `json:"context,omitempty"`
}

func (h *SuggestionHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req generateSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SuggestionHandler.Generate", "invalid request body", err))
		return
	}

	mode, err := models.ParseSuggestionMode(req.Mode)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SuggestionHandler.Generate", err.Error(), nil))
		return
	}

	batch, err := h.svc.Generate(c.Request.Context(), userID, mode, req.Context)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": batch})
}

func (h *SuggestionHandler) ListActive(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var mode *models.SuggestionMode
	if raw := c.Query("mode"); raw != "" {
		m, err := models.ParseSuggestionMode(raw)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "SuggestionHandler.ListActive", err.Error(), nil))
			return
		}
		mode = &m
	}

	out, err := h.svc.ListActive(c.Request.Context(), userID, mode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": out})
}
