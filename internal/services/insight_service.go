package services

import (
	"context"
	"errors"

	"github.com/jobmate/engine-service/internal/insight"
	"github.com/jobmate/engine-service/internal/models"
	pgrepo "github.com/jobmate/engine-service/internal/repositories/postgres"
	"github.com/jobmate/engine-service/internal/utils"
)

// narrateTop caps how many ranked listings get a natural-language blurb.
const narrateTop = 3

// CompatibilityInsight is the dashboard payload: the full ranking plus
// blurbs for the top results.
type CompatibilityInsight struct {
	Results []insight.Result `json:"results"`
	Blurbs  []string         `json:"insights"`
}

type InsightService interface {
	Compatibility(ctx context.Context, specialistID string, requirements, jobIDs []string, limit int) (*CompatibilityInsight, error)
}

type insightService struct {
	specialists pgrepo.SpecialistRepository
	jobs        pgrepo.JobRepository
}

func NewInsightService(specialists pgrepo.SpecialistRepository, jobs pgrepo.JobRepository) InsightService {
	return &insightService{specialists: specialists, jobs: jobs}
}

// Compatibility ranks either the given listings or, when jobIDs is empty,
// the current open jobs. Recomputed on every call — results are cheap and
// inputs change constantly.
func (s *insightService) Compatibility(ctx context.Context, specialistID string, requirements, jobIDs []string, limit int) (*CompatibilityInsight, error) {
	const op = "InsightService.Compatibility"

	if specialistID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "specialist_id is required", nil)
	}

	sp, err := s.specialists.GetByID(ctx, specialistID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "specialist not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load specialist", err)
	}

	jobs, err := s.loadListings(ctx, jobIDs)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load listings", err)
	}

	results := insight.Rank(sp, requirements, jobs)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return &CompatibilityInsight{
		Results: results,
		Blurbs:  insight.Narrate(results, narrateTop),
	}, nil
}

func (s *insightService) loadListings(ctx context.Context, jobIDs []string) ([]*models.Job, error) {
	if len(jobIDs) > 0 {
		return s.jobs.ListByIDs(ctx, jobIDs)
	}
	return s.jobs.ListOpen(ctx, candidateLimit)
}
