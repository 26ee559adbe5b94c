// Package insight ranks candidate listings against a specialist and turns
// the top results into short natural-language blurbs for the dashboard.
//
// Ranking reuses the canonical weights from internal/match and extends them
// with a requirements dimension; nothing here is cached — every call
// recomputes from the inputs it is handed.
package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jobmate/engine-service/internal/match"
	"github.com/jobmate/engine-service/internal/models"
)

// WeightRequirements is the extra dimension's weight, blended against the
// base aggregate by renormalization so the result stays a 0–100 percentage.
const WeightRequirements = 0.25

// Result is the compatibility of one listing, ready for rendering.
type Result struct {
	JobID string `json:"job_id"`
	Title string `json:"title"`

	Score        int          `json:"score"` // 0–100, requirements included
	Base         match.Result `json:"base"`
	Requirements match.Factor `json:"requirements"`
}

// Rank scores every listing against the specialist and the caller's
// must-have requirement terms, highest first. Ties break on job id so the
// ordering is stable across calls.
func Rank(sp *models.Specialist, requirements []string, jobs []*models.Job) []Result {
	out := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		base := match.Compute(job, sp)
		req := requirementsScore(requirements, job)

		blended := (float64(base.Score)/100 + WeightRequirements*req.Score) / (1 + WeightRequirements)

		out = append(out, Result{
			JobID:        job.ID,
			Title:        job.Title,
			Score:        int(math.Round(blended * 100)),
			Base:         base,
			Requirements: req,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].JobID < out[j].JobID
	})
	return out
}

// requirementsScore is the fraction of requirement terms appearing in the
// listing's title, description or category (case-insensitive substring).
// No requirements means nothing to check — optimistic 1 with Defaulted set.
func requirementsScore(requirements []string, job *models.Job) match.Factor {
	terms := make([]string, 0, len(requirements))
	for _, r := range requirements {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			terms = append(terms, r)
		}
	}
	if len(terms) == 0 {
		return match.Factor{Score: 1, Defaulted: true}
	}

	haystack := strings.ToLower(job.Title + " " + job.Description + " " + job.Category)
	hit := 0
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			hit++
		}
	}
	return match.Factor{Score: float64(hit) / float64(len(terms))}
}

// Narrate renders up to limit blurbs over the ranked results. Purely
// templated — no model calls, no randomness.
func Narrate(results []Result, limit int) []string {
	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}

	blurbs := make([]string, 0, limit)
	for _, r := range results[:limit] {
		blurbs = append(blurbs, narrateOne(r))
	}
	return blurbs
}

func narrateOne(r Result) string {
	var sb strings.Builder

	switch {
	case r.Score >= 80:
		fmt.Fprintf(&sb, "Strong fit: %q scores %d%%.", r.Title, r.Score)
	case r.Score >= 50:
		fmt.Fprintf(&sb, "Worth a look: %q scores %d%%.", r.Title, r.Score)
	default:
		fmt.Fprintf(&sb, "Weak fit: %q scores only %d%%.", r.Title, r.Score)
	}

	if f := r.Base.SkillMatch; !f.Defaulted && f.Score < 0.5 {
		fmt.Fprintf(&sb, " Your skills cover %d%% of what's asked.", int(math.Round(f.Score*100)))
	}
	if r.Base.LocationProximity.Score == 0 {
		fmt.Fprintf(&sb, " It sits outside your service area (%.0f km away).", r.Base.DistanceKm)
	}
	if f := r.Requirements; !f.Defaulted && f.Score < 1 {
		fmt.Fprintf(&sb, " It misses some of your must-haves (%d%% covered).", int(math.Round(f.Score*100)))
	}
	if f := r.Base.PriceMatch; f.Defaulted {
		sb.WriteString(" No budget information — price fit is assumed, not verified.")
	}

	return sb.String()
}
