package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jobmate/engine-service/internal/api/handlers"
	"github.com/jobmate/engine-service/internal/api/middleware"
)

type Deps struct {
	Match      *handlers.MatchHandler
	Suggestion *handlers.SuggestionHandler
	Price      *handlers.PriceHandler
	Insight    *handlers.InsightHandler
	Admin      *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/matches/jobs/:job_id", d.Match.SpecialistsForJob)
	auth.GET("/matches/specialists/:specialist_id", d.Match.JobsForSpecialist)

	auth.POST("/suggestions/generate", d.Suggestion.Generate)
	auth.GET("/suggestions", d.Suggestion.ListActive)

	auth.POST("/price/estimate", d.Price.Estimate)
	auth.POST("/price/estimate/query", d.Price.EstimateFromQuery)
	auth.GET("/price/history", d.Price.History)

	auth.POST("/insights/compatibility", d.Insight.Compatibility)

	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/maintenance/run", d.Admin.RunMaintenance)
}
