package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobmate/engine-service/internal/cache"
	"github.com/jobmate/engine-service/internal/models"
	pgrepo "github.com/jobmate/engine-service/internal/repositories/postgres"
	"github.com/jobmate/engine-service/internal/suggest"
	"github.com/jobmate/engine-service/internal/utils"
)

const snapshotTTL = 60 * time.Second

// snapshotSource assembles the suggestion generator's view of a user from
// the postgres repos, with a short-lived redis read-through. Cache problems
// are logged and ignored; repo failures (other than absent rows) propagate
// so the generator can degrade to an empty batch.
type snapshotSource struct {
	specialists pgrepo.SpecialistRepository
	jobs        pgrepo.JobRepository
	prefs       pgrepo.PreferenceRepository
	payments    pgrepo.PaymentRepository
	cache       cache.Cache
	log         *logrus.Logger
}

func NewSnapshotSource(
	specialists pgrepo.SpecialistRepository,
	jobs pgrepo.JobRepository,
	prefs pgrepo.PreferenceRepository,
	payments pgrepo.PaymentRepository,
	c cache.Cache,
	log *logrus.Logger,
) suggest.SnapshotSource {
	return &snapshotSource{
		specialists: specialists,
		jobs:        jobs,
		prefs:       prefs,
		payments:    payments,
		cache:       c,
		log:         log,
	}
}

func snapshotKey(userID string) string { return fmt.Sprintf("snapshot:%s", userID) }

func (s *snapshotSource) Load(ctx context.Context, userID string) (*suggest.Snapshot, error) {
	if s.cache != nil {
		var cached suggest.Snapshot
		hit, err := s.cache.GetJSON(ctx, snapshotKey(userID), &cached)
		if err != nil {
			s.log.WithError(err).Debug("snapshot cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	snap, err := s.build(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, snapshotKey(userID), snap, snapshotTTL); err != nil {
			s.log.WithError(err).Debug("snapshot cache write failed")
		}
	}
	return snap, nil
}

func (s *snapshotSource) build(ctx context.Context, userID string) (*suggest.Snapshot, error) {
	snap := &suggest.Snapshot{UserID: userID, Proactivity: models.DefaultProactivity}

	// Specialist profile is optional — customers without one still get
	// suggestions, just with the specialist-side fields zeroed.
	sp, err := s.specialists.GetByID(ctx, userID)
	switch {
	case err == nil:
		snap.SkillCount = len(sp.Skills)
		snap.Rating = sp.Rating
		snap.CompletedJobs = sp.CompletedJobs
		snap.HasRates = sp.HourlyRateMin != nil && sp.HourlyRateMax != nil
		snap.ProfileComplete = sp.Name != "" && len(sp.Skills) > 0 && sp.ServiceRadiusKm > 0
	case errors.Is(err, utils.ErrNotFound):
		// no specialist profile
	default:
		return nil, err
	}

	open, err := s.jobs.CountByCustomerAndStatus(ctx, userID, models.JobStatusOpen)
	if err != nil {
		return nil, err
	}
	snap.OpenJobs = int(open)

	completed, err := s.jobs.CountByCustomerAndStatus(ctx, userID, models.JobStatusCompleted)
	if err != nil {
		return nil, err
	}
	if snap.CompletedJobs == 0 {
		snap.CompletedJobs = int(completed)
	}

	pref, err := s.prefs.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		snap.Proactivity = pref.EffectiveProactivity()
		snap.PreferredCategories = pref.PreferredCategories
	case errors.Is(err, utils.ErrNotFound):
		// defaults already set
	default:
		return nil, err
	}

	pending, err := s.payments.CountPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap.PendingPayments = int(pending)

	hasMethod, err := s.payments.HasPaymentMethod(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap.HasPaymentMethod = hasMethod

	return snap, nil
}
