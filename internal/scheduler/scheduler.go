// Package scheduler runs the periodic retention sweep: stale suggestion
// batches are deactivated and old estimate-log entries dropped, so neither
// collection grows without bound.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	mongorepo "github.com/jobmate/engine-service/internal/repositories/mongo"
)

type Scheduler struct {
	cron        *cron.Cron
	suggestions mongorepo.SuggestionRepository
	estimates   mongorepo.EstimateLogRepository
	log         *logrus.Logger

	spec      string
	retention time.Duration
}

// New builds a Scheduler that sweeps every intervalHours hours, retiring
// anything older than retentionDays days.
func New(
	suggestions mongorepo.SuggestionRepository,
	estimates mongorepo.EstimateLogRepository,
	log *logrus.Logger,
	intervalHours, retentionDays int,
) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		suggestions: suggestions,
		estimates:   estimates,
		log:         log,
		spec:        fmt.Sprintf("@every %dh", intervalHours),
		retention:   time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start registers the sweep and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("retention scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("retention scheduler stopped")
}

// RunSweep executes one retention pass. Each step failing is logged and the
// sweep carries on — a partial sweep is better than none.
func (s *Scheduler) RunSweep(ctx context.Context) (deactivated, deleted int64) {
	cutoff := time.Now().UTC().Add(-s.retention)

	n, err := s.suggestions.DeactivateOlderThan(ctx, cutoff)
	if err != nil {
		s.log.WithError(err).Error("retention sweep: deactivating stale suggestions failed")
	} else {
		deactivated = n
	}

	m, err := s.estimates.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.log.WithError(err).Error("retention sweep: trimming estimate log failed")
	} else {
		deleted = m
	}

	s.log.WithFields(logrus.Fields{
		"suggestions_deactivated": deactivated,
		"estimates_deleted":       deleted,
		"cutoff":                  cutoff,
	}).Info("retention sweep complete")

	return deactivated, deleted
}
