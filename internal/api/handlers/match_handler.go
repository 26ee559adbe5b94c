package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/services"
)

type MatchHandler struct {
	svc services.MatchService
}

func NewMatchHandler(svc services.MatchService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

// rankingParams reads the shared limit/min_score query params.
// Defaults: 20 results, no score floor.
func rankingParams(c *gin.Context) (limit, minScore int) {
	limit = 20
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("min_score", "0")); err == nil && v > 0 {
		minScore = v
	}
	return limit, minScore
}

func (h *MatchHandler) SpecialistsForJob(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit, minScore := rankingParams(c)
	matches, err := h.svc.RankSpecialistsForJob(c.Request.Context(), c.Param("job_id"), limit, minScore)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *MatchHandler) JobsForSpecialist(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit, minScore := rankingParams(c)
	matches, err := h.svc.RankJobsForSpecialist(c.Request.Context(), c.Param("specialist_id"), limit, minScore)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
