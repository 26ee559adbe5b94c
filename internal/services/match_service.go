package services

import (
	"context"
	"errors"
	"sort"

	"github.com/jobmate/engine-service/internal/match"
	"github.com/jobmate/engine-service/internal/models"
	pgrepo "github.com/jobmate/engine-service/internal/repositories/postgres"
	"github.com/jobmate/engine-service/internal/utils"
)

// candidateLimit caps how many rows a single ranking call scores.
const candidateLimit = 200

// SpecialistMatch pairs a candidate specialist with its score for a job.
type SpecialistMatch struct {
	Specialist *models.Specialist `json:"specialist"`
	Result     match.Result       `json:"result"`
}

// JobMatch pairs a candidate open job with its score for a specialist.
type JobMatch struct {
	Job    *models.Job  `json:"job"`
	Result match.Result `json:"result"`
}

type MatchService interface {
	RankSpecialistsForJob(ctx context.Context, jobID string, limit, minScore int) ([]SpecialistMatch, error)
	RankJobsForSpecialist(ctx context.Context, specialistID string, limit, minScore int) ([]JobMatch, error)
}

type matchService struct {
	jobs        pgrepo.JobRepository
	specialists pgrepo.SpecialistRepository
}

func NewMatchService(jobs pgrepo.JobRepository, specialists pgrepo.SpecialistRepository) MatchService {
	return &matchService{jobs: jobs, specialists: specialists}
}

func (s *matchService) RankSpecialistsForJob(ctx context.Context, jobID string, limit, minScore int) ([]SpecialistMatch, error) {
	const op = "MatchService.RankSpecialistsForJob"

	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	candidates, err := s.specialists.List(ctx, candidateLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load specialists", err)
	}

	out := make([]SpecialistMatch, 0, len(candidates))
	for _, sp := range candidates {
		res := match.Compute(job, sp)
		if res.Score < minScore {
			continue
		}
		out = append(out, SpecialistMatch{Specialist: sp, Result: res})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Result.Score != out[j].Result.Score {
			return out[i].Result.Score > out[j].Result.Score
		}
		return out[i].Specialist.ID < out[j].Specialist.ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *matchService) RankJobsForSpecialist(ctx context.Context, specialistID string, limit, minScore int) ([]JobMatch, error) {
	const op = "MatchService.RankJobsForSpecialist"

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

	open, err := s.jobs.ListOpen(ctx, candidateLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load open jobs", err)
	}

	out := make([]JobMatch, 0, len(open))
	for _, job := range open {
		res := match.Compute(job, sp)
		if res.Score < minScore {
			continue
		}
		out = append(out, JobMatch{Job: job, Result: res})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Result.Score != out[j].Result.Score {
			return out[i].Result.Score > out[j].Result.Score
		}
		return out[i].Job.ID < out[j].Job.ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
