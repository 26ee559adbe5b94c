package main

import (
	"context"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobmate/engine-service/config"
	"github.com/jobmate/engine-service/internal/api/handlers"
	"github.com/jobmate/engine-service/internal/api/middleware"
	"github.com/jobmate/engine-service/internal/api/routes"
	"github.com/jobmate/engine-service/internal/cache"
	"github.com/jobmate/engine-service/internal/logger"
	mongorepo "github.com/jobmate/engine-service/internal/repositories/mongo"
	pgrepo "github.com/jobmate/engine-service/internal/repositories/postgres"
	"github.com/jobmate/engine-service/internal/scheduler"
	"github.com/jobmate/engine-service/internal/services"
	"github.com/jobmate/engine-service/internal/suggest"
)

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

func main() {
	_ = godotenv.Load()

	log := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.WithError(err).Fatal("PostgreSQL init failed")
	}
	log.Info("PostgreSQL connected")

	if err := config.InitMongo(); err != nil {
		log.WithError(err).Fatal("MongoDB init failed")
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.WithError(err).Fatal("MongoDB index setup failed")
	}
	log.Info("MongoDB connected")

	if err := config.InitRedis(); err != nil {
		log.WithError(err).Fatal("Redis init failed")
	}
	log.Info("Redis connected")

	// Repositories
	db := config.PostgresDB
	mdb := config.MongoDatabase()

	jobRepo := pgrepo.NewJobRepo(db)
	specialistRepo := pgrepo.NewSpecialistRepo(db)
	preferenceRepo := pgrepo.NewPreferenceRepo(db)
	paymentRepo := pgrepo.NewPaymentRepo(db)
	suggestionRepo := mongorepo.NewSuggestionRepo(mdb)
	estimateLogRepo := mongorepo.NewEstimateLogRepo(mdb)

	redisCache := cache.NewRedisCache(config.RedisClient)

	// Services
	snapshots := services.NewSnapshotSource(specialistRepo, jobRepo, preferenceRepo, paymentRepo, redisCache, log)
	generator := suggest.NewGenerator(snapshots, log)

	matchSvc := services.NewMatchService(jobRepo, specialistRepo)
	suggestionSvc := services.NewSuggestionService(generator, suggestionRepo, log)
	pricingSvc := services.NewPricingService(estimateLogRepo, log)
	insightSvc := services.NewInsightService(specialistRepo, jobRepo)

	// Retention sweep
	sched := scheduler.New(
		suggestionRepo,
		estimateLogRepo,
		log,
		envInt("SWEEP_INTERVAL_HOURS", 24),
		envInt("RETENTION_DAYS", 30),
	)
	ctx := context.Background()
	if err := sched.Start(ctx); err != nil {
		log.WithError(err).Fatal("scheduler start failed")
	}
	defer sched.Stop()

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Match:      handlers.NewMatchHandler(matchSvc),
		Suggestion: handlers.NewSuggestionHandler(suggestionSvc),
		Price:      handlers.NewPriceHandler(pricingSvc),
		Insight:    handlers.NewInsightHandler(insightSvc),
		Admin:      handlers.NewAdminHandler(sched),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
