package insight

import (
	"strings"
	"testing"

	"github.com/jobmate/engine-service/internal/models"
)

func f64(v float64) *float64 { return &v }

func specialist() *models.Specialist {
	return &models.Specialist{
		ID:                  "s1",
		Name:                "Alex",
		Skills:              []string{"plumbing", "tiling"},
		Latitude:            48.8566,
		Longitude:           2.3522,
		ServiceRadiusKm:     30,
		HourlyRateMin:       f64(30),
		HourlyRateMax:       f64(60),
		Rating:              4.8,
		CompletedJobs:       40,
		ResponseTimeMinutes: 60,
		Availability:        []byte(`{"monday":["morning"],"tuesday":["morning"],"wednesday":["morning"]}`),
	}
}

func job(id, title, desc string, skills ...string) *models.Job {
	return &models.Job{
		ID:             id,
		Title:          title,
		Description:    desc,
		Category:       "Home Services",
		Status:         models.JobStatusOpen,
		Urgency:        models.UrgencyMedium,
		RequiredSkills: skills,
		Latitude:       48.86,
		Longitude:      2.35,
		BudgetMin:      f64(35),
		BudgetMax:      f64(55),
	}
}

// ── Rank ───────────────────────────────────────────────────────────────────

func TestRank_OrdersByScoreDescending(t *testing.T) {
	jobs := []*models.Job{
		job("j-weak", "Rewire a house", "electrical work", "electrical", "certification"),
		job("j-strong", "Fix bathroom tiles", "tiling and plumbing", "plumbing", "tiling"),
	}
	got := Rank(specialist(), nil, jobs)

	if len(got) != 2 {
		t.Fatalf("ranked %d results, want 2", len(got))
	}
	if got[0].JobID != "j-strong" {
		t.Errorf("top result = %s, want j-strong", got[0].JobID)
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not sorted: %d before %d", got[0].Score, got[1].Score)
	}
}

func TestRank_EmptyRequirementsAreOptimistic(t *testing.T) {
	got := Rank(specialist(), nil, []*models.Job{job("j1", "Fix tiles", "tiling", "tiling")})
	r := got[0].Requirements
	if r.Score != 1 || !r.Defaulted {
		t.Errorf("no requirements should score 1 with Defaulted, got %+v", r)
	}
}

func TestRank_RequirementsDimension(t *testing.T) {
	j := job("j1", "Bathroom renovation", "full tiling job with modern materials", "tiling")
	got := Rank(specialist(), []string{"tiling", "weekend work"}, []*models.Job{j})

	r := got[0].Requirements
	if r.Score != 0.5 {
		t.Errorf("1 of 2 requirement terms matched, score = %v, want 0.5", r.Score)
	}
	if r.Defaulted {
		t.Error("explicit requirements should not be Defaulted")
	}
}

func TestRank_RequirementsLowerTheBlendedScore(t *testing.T) {
	j := job("j1", "Bathroom renovation", "tiling job", "tiling")
	without := Rank(specialist(), nil, []*models.Job{j})[0]
	with := Rank(specialist(), []string{"crane", "welding"}, []*models.Job{j})[0]

	if with.Score >= without.Score {
		t.Errorf("unmet requirements should lower the score: %d (with) vs %d (without)", with.Score, without.Score)
	}
}

func TestRank_DeterministicTieBreak(t *testing.T) {
	jobs := []*models.Job{
		job("j-b", "Fix tiles", "tiling", "tiling"),
		job("j-a", "Fix tiles", "tiling", "tiling"),
	}
	got := Rank(specialist(), nil, jobs)
	if got[0].JobID != "j-a" {
		t.Errorf("equal scores should order by job id, got %s first", got[0].JobID)
	}
}

// ── Narrate ────────────────────────────────────────────────────────────────

func TestNarrate_LimitsOutput(t *testing.T) {
	jobs := []*models.Job{
		job("j1", "A", "tiling", "tiling"),
		job("j2", "B", "tiling", "tiling"),
		job("j3", "C", "tiling", "tiling"),
	}
	results := Rank(specialist(), nil, jobs)

	if got := Narrate(results, 2); len(got) != 2 {
		t.Errorf("Narrate limit 2 produced %d blurbs", len(got))
	}
	if got := Narrate(results, 0); len(got) != len(results) {
		t.Errorf("Narrate limit 0 should cover all results, got %d", len(got))
	}
}

func TestNarrate_MentionsOutOfArea(t *testing.T) {
	far := job("j1", "Distant job", "tiling", "tiling")
	far.Latitude = 52.52 // Berlin, way beyond a 30 km Paris radius
	far.Longitude = 13.405

	blurbs := Narrate(Rank(specialist(), nil, []*models.Job{far}), 1)
	if len(blurbs) != 1 {
		t.Fatalf("expected 1 blurb, got %d", len(blurbs))
	}
	if !strings.Contains(blurbs[0], "service area") {
		t.Errorf("blurb should mention the job is out of the service area: %q", blurbs[0])
	}
}

func TestNarrate_DeterministicText(t *testing.T) {
	jobs := []*models.Job{job("j1", "Fix tiles", "tiling", "tiling")}
	a := Narrate(Rank(specialist(), nil, jobs), 1)
	b := Narrate(Rank(specialist(), nil, jobs), 1)
	if a[0] != b[0] {
		t.Error("narration is not deterministic for identical inputs")
	}
}
