package pricing

// Lookup tables for the price calculator. Loaded once, never mutated.
// Every table has a named default entry that is substituted (and flagged)
// when a lookup key is not recognized — a missing key is never an error.

type CategoryRate struct {
	Name    string
	RateMin float64 // base hourly, platform currency
	RateMax float64
}

// categories — the first entry is the fallback for unknown category names.
var categories = []CategoryRate{
	{Name: "Web Development", RateMin: 25, RateMax: 75},
	{Name: "Mobile Development", RateMin: 30, RateMax: 85},
	{Name: "Design", RateMin: 20, RateMax: 60},
	{Name: "Writing & Translation", RateMin: 15, RateMax: 45},
	{Name: "Marketing", RateMin: 20, RateMax: 65},
	{Name: "Home Services", RateMin: 18, RateMax: 50},
	{Name: "Repair & Maintenance", RateMin: 22, RateMax: 55},
	{Name: "Consulting", RateMin: 40, RateMax: 120},
}

type namedFactor struct {
	Name   string
	Factor float64
}

const (
	defaultComplexity = "Intermediate"
	defaultExperience = "Intermediate"
	defaultRegion     = "Global / Remote"
	defaultDuration   = "Standard"

	// DefaultHours is assumed when a query carries no parseable duration.
	DefaultHours = 40.0
)

// complexity multiplies the whole rate range.
var complexityLevels = []namedFactor{
	{Name: "Basic", Factor: 0.8},
	{Name: "Intermediate", Factor: 1.0},
	{Name: "Advanced", Factor: 1.35},
	{Name: "Enterprise", Factor: 1.75},
}

// experience is an additive adjustment applied as (1 + factor).
var experienceLevels = []namedFactor{
	{Name: "Entry", Factor: -0.25},
	{Name: "Intermediate", Factor: 0},
	{Name: "Expert", Factor: 0.30},
	{Name: "Master", Factor: 0.60},
}

// region scales for local purchasing power; remote work is the baseline.
var regionFactors = []namedFactor{
	{Name: "Global / Remote", Factor: 1.0},
	{Name: "North America", Factor: 1.3},
	{Name: "Western Europe", Factor: 1.2},
	{Name: "Eastern Europe", Factor: 0.85},
	{Name: "Asia-Pacific", Factor: 0.8},
	{Name: "Latin America", Factor: 0.75},
}

// duration impact, applied as (1 + factor): short engagements carry a
// premium, long commitments a discount.
var durationImpacts = []namedFactor{
	{Name: "Short-term", Factor: 0.15},
	{Name: "Standard", Factor: 0},
	{Name: "Extended", Factor: -0.05},
	{Name: "Long-term", Factor: -0.10},
}

// Categories returns a copy of the category table for the calculator UI.
func Categories() []CategoryRate {
	out := make([]CategoryRate, len(categories))
	copy(out, categories)
	return out
}

func lookupCategory(name string) (CategoryRate, bool) {
	for _, c := range categories {
		if equalFold(c.Name, name) {
			return c, false
		}
	}
	return categories[0], true
}

func lookupFactor(table []namedFactor, name, fallback string) (namedFactor, bool) {
	for _, f := range table {
		if equalFold(f.Name, name) {
			return f, false
		}
	}
	for _, f := range table {
		if f.Name == fallback {
			return f, true
		}
	}
	return table[0], true
}
