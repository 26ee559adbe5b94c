// Package suggest generates prioritized assistant suggestions from a
// snapshot of the user's current platform state.
//
// Generation is best-effort by design: a failed snapshot load or a panicking
// mode handler is logged and degrades to fewer (or zero) suggestions — the
// caller never sees an error.
package suggest

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jobmate/engine-service/internal/models"
)

// Snapshot is the request-scoped view of a user the mode handlers run
// against. It is assembled fresh per call by a SnapshotSource.
type Snapshot struct {
	UserID string

	SkillCount      int
	ProfileComplete bool
	HasRates        bool
	Rating          float64

	OpenJobs      int
	CompletedJobs int

	PendingPayments  int
	HasPaymentMethod bool

	PreferredCategories []string
	Proactivity         int // 1–3, see models.DefaultProactivity
}

// SnapshotSource loads a user's snapshot from the data layer.
type SnapshotSource interface {
	Load(ctx context.Context, userID string) (*Snapshot, error)
}

// Generator dispatches one mode handler per call and post-filters the
// result by the user's proactivity level.
type Generator struct {
	source SnapshotSource
	log    *logrus.Logger
}

func NewGenerator(source SnapshotSource, log *logrus.Logger) *Generator {
	if log == nil {
		log = logrus.New()
	}
	return &Generator{source: source, log: log}
}

type modeHandler func(snap *Snapshot, contextTag string) []models.Suggestion

// Generate produces the filtered suggestion batch for one (user, mode)
// invocation. Never returns an error: failures degrade to an empty slice.
func (g *Generator) Generate(ctx context.Context, userID string, mode models.SuggestionMode, contextTag string) []models.Suggestion {
	snap, err := g.source.Load(ctx, userID)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"user_id": userID,
			"mode":    mode,
		}).WithError(err).Warn("suggestion snapshot load failed, returning empty batch")
		return []models.Suggestion{}
	}

	handler, ok := g.handlers()[mode]
	if !ok {
		handler = g.generalSuggestions
	}

	raw := g.runHandler(handler, mode, snap, contextTag)

	for i := range raw {
		raw[i].UserID = userID
		raw[i].Mode = mode
		raw[i].Context = contextTag
		raw[i].Active = true
	}

	return FilterByProactivity(raw, snap.Proactivity)
}

// runHandler isolates a single mode handler: a panic is trapped and logged,
// and the handler simply contributes nothing.
func (g *Generator) runHandler(h modeHandler, mode models.SuggestionMode, snap *Snapshot, contextTag string) (out []models.Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			g.log.WithFields(logrus.Fields{
				"user_id": snap.UserID,
				"mode":    mode,
				"panic":   r,
			}).Error("suggestion handler panicked, dropping its output")
			out = nil
		}
	}()
	return h(snap, contextTag)
}

func (g *Generator) handlers() map[models.SuggestionMode]modeHandler {
	return map[models.SuggestionMode]modeHandler{
		models.ModeMatching:     g.matchingSuggestions,
		models.ModeProjectSetup: g.projectSetupSuggestions,
		models.ModeProfile:      g.profileSuggestions,
		models.ModePayments:     g.paymentSuggestions,
		models.ModeMarketplace:  g.marketplaceSuggestions,
		models.ModeGeneral:      g.generalSuggestions,
	}
}

// FilterByProactivity keeps suggestions according to the user's preference:
// level 1 keeps high priority only, level 2 keeps medium and up, level 3
// keeps everything. Out-of-range levels behave like the default.
func FilterByProactivity(list []models.Suggestion, level int) []models.Suggestion {
	if level < models.ProactivityQuiet || level > models.ProactivityEager {
		level = models.DefaultProactivity
	}

	// level 1 → min priority 3, level 2 → 2, level 3 → 1
	minPriority := models.PriorityHigh - (level - 1)

	out := make([]models.Suggestion, 0, len(list))
	for _, s := range list {
		if s.Priority >= minPriority {
			out = append(out, s)
		}
	}
	return out
}
