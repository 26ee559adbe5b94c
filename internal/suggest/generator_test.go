package suggest

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/jobmate/engine-service/internal/models"
)

type fakeSource struct {
	snap *Snapshot
	err  error
}

func (f *fakeSource) Load(_ context.Context, _ string) (*Snapshot, error) {
	return f.snap, f.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestGenerator(snap *Snapshot, err error) *Generator {
	return NewGenerator(&fakeSource{snap: snap, err: err}, quietLogger())
}

// ── FilterByProactivity ────────────────────────────────────────────────────

func mixedBatch() []models.Suggestion {
	return []models.Suggestion{
		{Title: "low", Priority: models.PriorityLow},
		{Title: "medium", Priority: models.PriorityMedium},
		{Title: "high", Priority: models.PriorityHigh},
		{Title: "high-2", Priority: models.PriorityHigh},
	}
}

func TestFilterByProactivity_QuietKeepsHighOnly(t *testing.T) {
	got := FilterByProactivity(mixedBatch(), models.ProactivityQuiet)
	if len(got) != 2 {
		t.Fatalf("level 1 kept %d suggestions, want 2", len(got))
	}
	for _, s := range got {
		if s.Priority != models.PriorityHigh {
			t.Errorf("level 1 leaked priority %d suggestion %q", s.Priority, s.Title)
		}
	}
}

func TestFilterByProactivity_BalancedKeepsMediumAndUp(t *testing.T) {
	got := FilterByProactivity(mixedBatch(), models.ProactivityBalanced)
	if len(got) != 3 {
		t.Fatalf("level 2 kept %d suggestions, want 3", len(got))
	}
	for _, s := range got {
		if s.Priority < models.PriorityMedium {
			t.Errorf("level 2 leaked priority %d suggestion %q", s.Priority, s.Title)
		}
	}
}

func TestFilterByProactivity_EagerKeepsEverything(t *testing.T) {
	in := mixedBatch()
	got := FilterByProactivity(in, models.ProactivityEager)
	if len(got) != len(in) {
		t.Errorf("level 3 kept %d suggestions, want the full set of %d", len(got), len(in))
	}
}

func TestFilterByProactivity_OutOfRangeActsLikeDefault(t *testing.T) {
	def := FilterByProactivity(mixedBatch(), models.DefaultProactivity)
	for _, level := range []int{0, -1, 4, 99} {
		got := FilterByProactivity(mixedBatch(), level)
		if len(got) != len(def) {
			t.Errorf("level %d kept %d suggestions, want %d (default behavior)", level, len(got), len(def))
		}
	}
}

// ── Generate — failure semantics ───────────────────────────────────────────

func TestGenerate_SnapshotFailureReturnsEmptyBatch(t *testing.T) {
	g := newTestGenerator(nil, errors.New("db down"))
	got := g.Generate(context.Background(), "u1", models.ModeMatching, "")
	if got == nil {
		t.Fatal("failed snapshot should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("failed snapshot returned %d suggestions, want 0", len(got))
	}
}

func TestGenerate_PanickingHandlerContributesNothing(t *testing.T) {
	g := newTestGenerator(&Snapshot{UserID: "u1", Proactivity: models.ProactivityEager}, nil)

	var boom modeHandler = func(_ *Snapshot, _ string) []models.Suggestion {
		panic("handler bug")
	}
	got := g.runHandler(boom, models.ModeGeneral, &Snapshot{UserID: "u1"}, "")
	if len(got) != 0 {
		t.Errorf("panicking handler contributed %d suggestions, want 0", len(got))
	}
}

// ── Generate — mode handlers ───────────────────────────────────────────────

func TestGenerate_MatchingModeZeroSkills(t *testing.T) {
	g := newTestGenerator(&Snapshot{UserID: "u1", SkillCount: 0, Proactivity: models.ProactivityEager}, nil)
	got := g.Generate(context.Background(), "u1", models.ModeMatching, "")

	found := false
	for _, s := range got {
		if s.Title == "Add your skills" {
			found = true
			if s.Priority != models.PriorityHigh {
				t.Errorf("zero-skill suggestion priority = %d, want high", s.Priority)
			}
		}
	}
	if !found {
		t.Error("matching mode with zero skills should suggest adding skills")
	}
}

func TestGenerate_StampsUserModeAndActive(t *testing.T) {
	g := newTestGenerator(&Snapshot{UserID: "u1", Proactivity: models.ProactivityEager}, nil)
	got := g.Generate(context.Background(), "u1", models.ModeGeneral, "onboarding")

	if len(got) == 0 {
		t.Fatal("general mode should always produce at least one suggestion")
	}
	for _, s := range got {
		if s.UserID != "u1" || s.Mode != models.ModeGeneral || !s.Active {
			t.Errorf("suggestion not stamped correctly: %+v", s)
		}
		if s.Context != "onboarding" {
			t.Errorf("context tag = %q, want \"onboarding\"", s.Context)
		}
	}
}

func TestGenerate_PaymentsMode(t *testing.T) {
	g := newTestGenerator(&Snapshot{
		UserID:           "u1",
		PendingPayments:  2,
		HasPaymentMethod: false,
		Proactivity:      models.ProactivityEager,
	}, nil)
	got := g.Generate(context.Background(), "u1", models.ModePayments, "")

	if len(got) != 2 {
		t.Fatalf("payments mode produced %d suggestions, want 2", len(got))
	}
	if got[0].Priority != models.PriorityHigh {
		t.Errorf("pending payments should be high priority, got %d", got[0].Priority)
	}
}

func TestGenerate_QuietUserSeesOnlyHighPriority(t *testing.T) {
	snap := &Snapshot{
		UserID:           "u1",
		PendingPayments:  1,     // high
		HasPaymentMethod: false, // medium
		Proactivity:      models.ProactivityQuiet,
	}
	g := newTestGenerator(snap, nil)
	got := g.Generate(context.Background(), "u1", models.ModePayments, "")

	if len(got) != 1 {
		t.Fatalf("quiet user got %d suggestions, want 1", len(got))
	}
	if got[0].Priority != models.PriorityHigh {
		t.Errorf("quiet user saw priority %d, want high only", got[0].Priority)
	}
}

func TestGenerate_UnknownModeFallsBackToGeneral(t *testing.T) {
	g := newTestGenerator(&Snapshot{UserID: "u1", Proactivity: models.ProactivityEager}, nil)
	got := g.Generate(context.Background(), "u1", models.SuggestionMode("SOMETHING_NEW"), "")
	if len(got) == 0 {
		t.Error("unknown mode should fall back to the general handler, not return nothing")
	}
}
