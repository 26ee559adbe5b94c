package match

import (
	"reflect"
	"testing"

	"github.com/jobmate/engine-service/internal/models"
)

func f64(v float64) *float64 { return &v }

// ── skillScore ─────────────────────────────────────────────────────────────

func TestSkillScore_EmptyRequiredMatchesEveryone(t *testing.T) {
	got := skillScore(nil, []string{"plumbing"})
	if got.Score != 1 {
		t.Errorf("skillScore(nil, ...) = %v, want 1", got.Score)
	}
	if !got.Defaulted {
		t.Error("skillScore with no required skills should be flagged Defaulted")
	}
}

func TestSkillScore_SubsetScoresOne(t *testing.T) {
	got := skillScore(
		[]string{"Plumbing", "tiling"},
		[]string{"plumbing", "TILING", "electrical"},
	)
	if got.Score != 1 {
		t.Errorf("subset skills = %v, want 1", got.Score)
	}
	if got.Defaulted {
		t.Error("fully specified skills should not be Defaulted")
	}
}

func TestSkillScore_PartialOverlap(t *testing.T) {
	got := skillScore(
		[]string{"plumbing", "tiling", "roofing", "welding"},
		[]string{"plumbing", "tiling"},
	)
	if got.Score != 0.5 {
		t.Errorf("2 of 4 skills = %v, want 0.5", got.Score)
	}
}

func TestSkillScore_DuplicatesDoNotInflate(t *testing.T) {
	got := skillScore(
		[]string{"plumbing", "roofing"},
		[]string{"plumbing", "plumbing", "plumbing"},
	)
	if got.Score != 0.5 {
		t.Errorf("duplicate specialist skills = %v, want 0.5", got.Score)
	}
}

func TestSkillScore_Range(t *testing.T) {
	cases := [][2][]string{
		{{"a"}, {}},
		{{"a", "b"}, {"b"}},
		{{"a"}, {"a", "c", "d"}},
	}
	for _, c := range cases {
		got := skillScore(c[0], c[1])
		if got.Score < 0 || got.Score > 1 {
			t.Errorf("skillScore(%v, %v) = %v, out of [0,1]", c[0], c[1], got.Score)
		}
	}
}

// ── locationScore ──────────────────────────────────────────────────────────

func TestLocationScore_AtRadiusBoundaryIsZero(t *testing.T) {
	got := locationScore(25, 25)
	if got.Score != 0 {
		t.Errorf("distance == radius should score exactly 0, got %v", got.Score)
	}
}

func TestLocationScore_BeyondRadiusIsZero(t *testing.T) {
	got := locationScore(30, 25)
	if got.Score != 0 {
		t.Errorf("distance beyond radius = %v, want 0", got.Score)
	}
}

func TestLocationScore_LinearDecay(t *testing.T) {
	got := locationScore(10, 40)
	if got.Score != 0.75 {
		t.Errorf("10km of 40km radius = %v, want 0.75", got.Score)
	}
}

func TestLocationScore_ZeroRadiusDefaults(t *testing.T) {
	got := locationScore(3, 0)
	if got.Score != 0.5 || !got.Defaulted {
		t.Errorf("zero radius should default to neutral, got %+v", got)
	}
}

// ── priceScore ─────────────────────────────────────────────────────────────

func TestPriceScore_UnspecifiedRangeIsOptimistic(t *testing.T) {
	got := priceScore(nil, nil, f64(20), f64(40))
	if got.Score != 1 || !got.Defaulted {
		t.Errorf("missing budget should score 1 with Defaulted, got %+v", got)
	}
}

func TestPriceScore_InvertedBudgetTreatedAsUnspecified(t *testing.T) {
	got := priceScore(f64(80), f64(40), f64(20), f64(40))
	if got.Score != 1 || !got.Defaulted {
		t.Errorf("inverted budget should score 1 with Defaulted, got %+v", got)
	}
}

func TestPriceScore_DisjointRangesScoreZero(t *testing.T) {
	got := priceScore(f64(10), f64(20), f64(50), f64(80))
	if got.Score != 0 {
		t.Errorf("disjoint ranges = %v, want 0", got.Score)
	}
}

func TestPriceScore_ContainedRangeScoresOne(t *testing.T) {
	got := priceScore(f64(10), f64(100), f64(30), f64(50))
	if got.Score != 1 {
		t.Errorf("contained rate range = %v, want 1", got.Score)
	}
	if got.Defaulted {
		t.Error("fully specified ranges should not be Defaulted")
	}
}

// ── reputationScore ────────────────────────────────────────────────────────

func TestReputationScore_ConfidenceRamp(t *testing.T) {
	full := reputationScore(5, 10)
	if full.Score != 1 {
		t.Errorf("5 stars with history = %v, want 1", full.Score)
	}

	fresh := reputationScore(5, 1)
	if fresh.Score != 0.2 {
		t.Errorf("5 stars, 1 job = %v, want 0.2 (1/5 confidence)", fresh.Score)
	}

	none := reputationScore(5, 0)
	if none.Score != 0 {
		t.Errorf("no completed jobs = %v, want 0", none.Score)
	}
}

// ── availabilityScore ──────────────────────────────────────────────────────

func TestAvailabilityScore_EmptyScheduleDefaults(t *testing.T) {
	got := availabilityScore(models.UrgencyHigh, nil, 30)
	if got.Score != 0.5 || !got.Defaulted {
		t.Errorf("empty schedule should default to neutral, got %+v", got)
	}
}

func TestAvailabilityScore_FullWeekFastResponse(t *testing.T) {
	sched := []byte(`{"monday":["morning"],"tuesday":["morning"],"wednesday":["morning"],"thursday":["morning"],"friday":["morning"]}`)
	got := availabilityScore(models.UrgencyHigh, sched, 30)
	if got.Score != 1 {
		t.Errorf("5-day coverage, fast response = %v, want 1", got.Score)
	}
}

func TestAvailabilityScore_SlowResponsePenalized(t *testing.T) {
	sched := []byte(`{"monday":["morning"],"tuesday":["morning"],"wednesday":["morning"],"thursday":["morning"],"friday":["morning"]}`)
	fast := availabilityScore(models.UrgencyHigh, sched, 30)
	slow := availabilityScore(models.UrgencyHigh, sched, 600)
	if slow.Score >= fast.Score {
		t.Errorf("slow responder (%v) should score below fast responder (%v)", slow.Score, fast.Score)
	}
}

// ── Compute ────────────────────────────────────────────────────────────────

func sampleJob() *models.Job {
	return &models.Job{
		ID:             "j1",
		Title:          "Bathroom renovation",
		Status:         models.JobStatusOpen,
		Urgency:        models.UrgencyMedium,
		RequiredSkills: []string{"plumbing", "tiling"},
		Latitude:       48.8566,
		Longitude:      2.3522,
		BudgetMin:      f64(30),
		BudgetMax:      f64(60),
	}
}

func sampleSpecialist() *models.Specialist {
	return &models.Specialist{
		ID:                  "s1",
		Name:                "Alex",
		Skills:              []string{"plumbing", "tiling", "heating"},
		Latitude:            48.86,
		Longitude:           2.35,
		ServiceRadiusKm:     25,
		HourlyRateMin:       f64(35),
		HourlyRateMax:       f64(55),
		Rating:              4.5,
		CompletedJobs:       20,
		ResponseTimeMinutes: 45,
		Availability:        []byte(`{"monday":["morning"],"wednesday":["afternoon"],"friday":["morning","evening"]}`),
	}
}

func TestCompute_ScoreInRange(t *testing.T) {
	res := Compute(sampleJob(), sampleSpecialist())
	if res.Score < 0 || res.Score > 100 {
		t.Errorf("overall score %d out of [0,100]", res.Score)
	}
	for name, f := range map[string]Factor{
		"skill":        res.SkillMatch,
		"location":     res.LocationProximity,
		"price":        res.PriceMatch,
		"reputation":   res.ReputationScore,
		"availability": res.AvailabilityMatch,
	} {
		if f.Score < 0 || f.Score > 1 {
			t.Errorf("factor %s = %v, out of [0,1]", name, f.Score)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	a := Compute(sampleJob(), sampleSpecialist())
	b := Compute(sampleJob(), sampleSpecialist())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestCompute_WeightsSumToOne(t *testing.T) {
	sum := WeightSkill + WeightLocation + WeightPrice + WeightReputation + WeightAvailability
	if sum != 1.0 {
		t.Errorf("factor weights sum to %v, want 1.0", sum)
	}
}
