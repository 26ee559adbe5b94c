package pricing

import (
	"reflect"
	"testing"
)

// ── Calculate — fallback behavior ──────────────────────────────────────────

func TestCalculate_UnknownCategoryFallsBackToFirstEntry(t *testing.T) {
	unknown := Calculate(Input{Category: "Underwater Basket Weaving", Hours: 10})
	first := Calculate(Input{Category: categories[0].Name, Hours: 10})

	if unknown.HourlyMin != first.HourlyMin || unknown.HourlyMax != first.HourlyMax {
		t.Errorf("unknown category should price like %q: got %v–%v, want %v–%v",
			categories[0].Name, unknown.HourlyMin, unknown.HourlyMax, first.HourlyMin, first.HourlyMax)
	}
	if !unknown.Category.Defaulted {
		t.Error("unknown category should set Category.Defaulted")
	}
	if first.Category.Defaulted {
		t.Error("exact category name should not set Category.Defaulted")
	}
}

func TestCalculate_UnknownSelectorsUseNamedDefaults(t *testing.T) {
	e := Calculate(Input{
		Category:   "Design",
		Complexity: "impossible",
		Experience: "wizard",
		Region:     "Atlantis",
		Duration:   "forever",
		Hours:      5,
	})

	cases := []struct {
		name string
		sel  Selector
		want string
	}{
		{"complexity", e.Complexity, defaultComplexity},
		{"experience", e.Experience, defaultExperience},
		{"region", e.Region, defaultRegion},
		{"duration", e.Duration, defaultDuration},
	}
	for _, c := range cases {
		if c.sel.Value != c.want {
			t.Errorf("%s = %q, want default %q", c.name, c.sel.Value, c.want)
		}
		if !c.sel.Defaulted {
			t.Errorf("%s should be flagged Defaulted", c.name)
		}
	}
}

func TestCalculate_CaseInsensitiveLookup(t *testing.T) {
	e := Calculate(Input{Category: "  web development ", Complexity: "ENTERPRISE", Hours: 1})
	if e.Category.Defaulted || e.Complexity.Defaulted {
		t.Errorf("case/space variants should resolve without defaulting: %+v %+v", e.Category, e.Complexity)
	}
	if e.Complexity.Value != "Enterprise" {
		t.Errorf("complexity = %q, want canonical \"Enterprise\"", e.Complexity.Value)
	}
}

// ── Calculate — arithmetic ─────────────────────────────────────────────────

func TestCalculate_TotalIsExactlyHourlyTimesHours(t *testing.T) {
	inputs := []Input{
		{Category: "Web Development", Complexity: "Enterprise", Experience: "Expert", Region: "North America", Duration: "Extended", Hours: 120},
		{Category: "Design", Complexity: "Basic", Experience: "Entry", Region: "Asia-Pacific", Duration: "Short-term", Hours: 3},
		{Category: "Consulting", Hours: 40},
		{Category: "nonsense", Hours: 7.5},
	}
	for _, in := range inputs {
		e := Calculate(in)
		if e.TotalMin != e.HourlyMin*e.Hours {
			t.Errorf("%+v: TotalMin = %v, want HourlyMin×Hours = %v", in, e.TotalMin, e.HourlyMin*e.Hours)
		}
		if e.TotalMax != e.HourlyMax*e.Hours {
			t.Errorf("%+v: TotalMax = %v, want HourlyMax×Hours = %v", in, e.TotalMax, e.HourlyMax*e.Hours)
		}
	}
}

func TestCalculate_MinNeverExceedsMax(t *testing.T) {
	for _, cat := range categories {
		for _, comp := range complexityLevels {
			e := Calculate(Input{Category: cat.Name, Complexity: comp.Name, Hours: 10})
			if e.HourlyMin > e.HourlyMax {
				t.Errorf("%s/%s: hourly min %v > max %v", cat.Name, comp.Name, e.HourlyMin, e.HourlyMax)
			}
		}
	}
}

func TestCalculate_ZeroHoursSubstitutesDefault(t *testing.T) {
	e := Calculate(Input{Category: "Design"})
	if e.Hours != DefaultHours {
		t.Errorf("hours = %v, want default %v", e.Hours, DefaultHours)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{Category: "Marketing", Complexity: "Advanced", Experience: "Expert", Region: "Western Europe", Duration: "Long-term", Hours: 80}
	if !reflect.DeepEqual(Calculate(in), Calculate(in)) {
		t.Error("Calculate is not deterministic for identical input")
	}
}
