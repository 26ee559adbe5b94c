package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/pricing"
	"github.com/jobmate/engine-service/internal/services"
	"github.com/jobmate/engine-service/internal/utils"
)

type PriceHandler struct {
	svc services.PricingService
}

func NewPriceHandler(svc services.PricingService) *PriceHandler {
	return &PriceHandler{svc: svc}
}

func (h *PriceHandler) Estimate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var in pricing.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PriceHandler.Estimate", "invalid request body", err))
		return
	}

	e, err := h.svc.Estimate(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

type estimateQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

func (h *PriceHandler) EstimateFromQuery(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req estimateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PriceHandler.EstimateFromQuery", "invalid request body", err))
		return
	}

	e, err := h.svc.EstimateFromQuery(c.Request.Context(), userID, req.Query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *PriceHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	hist, err := h.svc.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}
