package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jobmate/engine-service/internal/models"
	"github.com/jobmate/engine-service/internal/pricing"
	mongorepo "github.com/jobmate/engine-service/internal/repositories/mongo"
	"github.com/jobmate/engine-service/internal/utils"
)

// historyWindow is how many recent calculator invocations feed the
// personalized defaults.
const historyWindow = 50

// PriceHistory is a user's calculator usage: frequency-derived defaults
// plus the raw recent entries.
type PriceHistory struct {
	Defaults pricing.Input        `json:"defaults"`
	Recent   []models.EstimateLog `json:"recent"`
}

type PricingService interface {
	Estimate(ctx context.Context, userID string, in pricing.Input) (pricing.Estimate, error)
	EstimateFromQuery(ctx context.Context, userID, query string) (pricing.Estimate, error)
	History(ctx context.Context, userID string) (*PriceHistory, error)
}

type pricingService struct {
	logRepo mongorepo.EstimateLogRepository
	log     *logrus.Logger
}

func NewPricingService(logRepo mongorepo.EstimateLogRepository, log *logrus.Logger) PricingService {
	return &pricingService{logRepo: logRepo, log: log}
}

func (s *pricingService) Estimate(ctx context.Context, userID string, in pricing.Input) (pricing.Estimate, error) {
	e := pricing.Calculate(in)
	s.record(ctx, userID, e)
	return e, nil
}

func (s *pricingService) EstimateFromQuery(ctx context.Context, userID, query string) (pricing.Estimate, error) {
	const op = "PricingService.EstimateFromQuery"

	if query == "" {
		return pricing.Estimate{}, utils.E(utils.CodeInvalidArgument, op, "query is required", nil)
	}

	e := pricing.FromQuery(query)
	s.record(ctx, userID, e)
	return e, nil
}

// record appends the invocation to the usage log. Failure to log never
// fails the estimate.
func (s *pricingService) record(ctx context.Context, userID string, e pricing.Estimate) {
	if userID == "" {
		return
	}
	entry := &models.EstimateLog{
		UserID:     userID,
		Category:   e.Category.Value,
		Complexity: e.Complexity.Value,
		Experience: e.Experience.Value,
		Region:     e.Region.Value,
		Duration:   e.Duration.Value,
		Hours:      e.Hours,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.log.WithField("user_id", userID).WithError(err).Warn("failed to record estimate usage")
	}
}

// History aggregates the user's recent calculator usage into per-field
// defaults by frequency count; ties keep the value seen first in the
// most-recent-first scan.
func (s *pricingService) History(ctx context.Context, userID string) (*PriceHistory, error) {
	const op = "PricingService.History"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	recent, err := s.logRepo.ListRecentByUser(ctx, userID, historyWindow)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load estimate history", err)
	}
	if recent == nil {
		recent = []models.EstimateLog{}
	}

	h := &PriceHistory{Recent: recent}
	if len(recent) == 0 {
		return h, nil
	}

	var categories, complexities, experiences, regions, durations []string
	hoursCounts := make(map[float64]int)
	var hoursOrder []float64
	for _, e := range recent {
		categories = append(categories, e.Category)
		complexities = append(complexities, e.Complexity)
		experiences = append(experiences, e.Experience)
		regions = append(regions, e.Region)
		durations = append(durations, e.Duration)
		if _, seen := hoursCounts[e.Hours]; !seen {
			hoursOrder = append(hoursOrder, e.Hours)
		}
		hoursCounts[e.Hours]++
	}

	h.Defaults = pricing.Input{
		Category:   mostFrequent(categories),
		Complexity: mostFrequent(complexities),
		Experience: mostFrequent(experiences),
		Region:     mostFrequent(regions),
		Duration:   mostFrequent(durations),
		Hours:      mostFrequentFloat(hoursOrder, hoursCounts),
	}
	return h, nil
}

// mostFrequent returns the value with the highest count; on ties the value
// encountered first wins.
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	best := ""
	bestCount := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

func mostFrequentFloat(order []float64, counts map[float64]int) float64 {
	var best float64
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
