// Package pricing implements the JobMate price calculator: multiplier-table
// estimation plus free-text parameter extraction.
//
// The calculator never fails: unknown selector values substitute a named
// default entry and set the matching Defaulted flag, and an unparseable
// duration falls back to DefaultHours.
package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Input selects one entry from each lookup table plus an hour count.
type Input struct {
	Category   string  `json:"category"`
	Complexity string  `json:"complexity"`
	Experience string  `json:"experience"`
	Region     string  `json:"region"`
	Duration   string  `json:"duration"`
	Hours      float64 `json:"hours"`
}

// Selector is a resolved lookup key. Defaulted is true when the requested
// key was not found and the table's default entry was substituted.
type Selector struct {
	Value     string `json:"value"`
	Defaulted bool   `json:"defaulted,omitempty"`
}

// Estimate is the computed price range. Totals are exactly hourly × hours.
type Estimate struct {
	Category   Selector `json:"category"`
	Complexity Selector `json:"complexity"`
	Experience Selector `json:"experience"`
	Region     Selector `json:"region"`
	Duration   Selector `json:"duration"`

	Hours     float64 `json:"hours"`
	HourlyMin float64 `json:"hourly_min"`
	HourlyMax float64 `json:"hourly_max"`
	TotalMin  float64 `json:"total_min"`
	TotalMax  float64 `json:"total_max"`

	Explanation string `json:"explanation"`
}

// Calculate derives an estimate from the lookup tables. Min and max are
// rounded to whole units independently before totals are taken.
func Calculate(in Input) Estimate {
	cat, catDef := lookupCategory(in.Category)
	comp, compDef := lookupFactor(complexityLevels, in.Complexity, defaultComplexity)
	exp, expDef := lookupFactor(experienceLevels, in.Experience, defaultExperience)
	region, regionDef := lookupFactor(regionFactors, in.Region, defaultRegion)
	dur, durDef := lookupFactor(durationImpacts, in.Duration, defaultDuration)

	hours := in.Hours
	if hours <= 0 {
		hours = DefaultHours
	}

	scale := comp.Factor * (1 + exp.Factor) * region.Factor * (1 + dur.Factor)
	hourlyMin := math.Round(cat.RateMin * scale)
	hourlyMax := math.Round(cat.RateMax * scale)

	e := Estimate{
		Category:   Selector{Value: cat.Name, Defaulted: catDef},
		Complexity: Selector{Value: comp.Name, Defaulted: compDef},
		Experience: Selector{Value: exp.Name, Defaulted: expDef},
		Region:     Selector{Value: region.Name, Defaulted: regionDef},
		Duration:   Selector{Value: dur.Name, Defaulted: durDef},
		Hours:      hours,
		HourlyMin:  hourlyMin,
		HourlyMax:  hourlyMax,
		TotalMin:   hourlyMin * hours,
		TotalMax:   hourlyMax * hours,
	}
	e.Explanation = explain(e)
	return e
}

func explain(e Estimate) string {
	return fmt.Sprintf(
		"%s work at %s complexity, specialist at %s level, in %s (%s engagement): %.0f–%.0f/hour, %.0f–%.0f total for %.0f hours.",
		e.Category.Value, strings.ToLower(e.Complexity.Value), strings.ToLower(e.Experience.Value),
		e.Region.Value, strings.ToLower(e.Duration.Value),
		e.HourlyMin, e.HourlyMax, e.TotalMin, e.TotalMax, e.Hours,
	)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
