package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jobmate/engine-service/internal/models"
	mongorepo "github.com/jobmate/engine-service/internal/repositories/mongo"
	"github.com/jobmate/engine-service/internal/suggest"
	"github.com/jobmate/engine-service/internal/utils"
)

type SuggestionService interface {
	Generate(ctx context.Context, userID string, mode models.SuggestionMode, contextTag string) ([]models.Suggestion, error)
	ListActive(ctx context.Context, userID string, mode *models.SuggestionMode) ([]models.Suggestion, error)
}

type suggestionService struct {
	generator   *suggest.Generator
	suggestions mongorepo.SuggestionRepository
	log         *logrus.Logger
}

func NewSuggestionService(generator *suggest.Generator, suggestions mongorepo.SuggestionRepository, log *logrus.Logger) SuggestionService {
	return &suggestionService{generator: generator, suggestions: suggestions, log: log}
}

// Generate runs the mode handler for the user and persists the batch,
// replacing the previous generation for the same mode. Persistence is best
// effort: a storage failure is logged and the fresh batch is still returned.
func (s *suggestionService) Generate(ctx context.Context, userID string, mode models.SuggestionMode, contextTag string) ([]models.Suggestion, error) {
	const op = "SuggestionService.Generate"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	batch := s.generator.Generate(ctx, userID, mode, contextTag)

	if err := s.suggestions.ReplaceBatch(ctx, userID, mode, batch); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"mode":    mode,
		}).WithError(err).Warn("failed to persist suggestion batch, returning it anyway")
	}

	return batch, nil
}

func (s *suggestionService) ListActive(ctx context.Context, userID string, mode *models.SuggestionMode) ([]models.Suggestion, error) {
	const op = "SuggestionService.ListActive"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	out, err := s.suggestions.ListActive(ctx, userID, mode)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list suggestions", err)
	}
	if out == nil {
		out = []models.Suggestion{}
	}
	return out, nil
}
