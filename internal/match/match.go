// Package match scores job ↔ specialist compatibility.
//
// All factor scores are normalized to [0,1] before the weighted aggregator
// scales the overall result to a 0–100 percentage. Missing optional inputs
// never fail a computation: they substitute a neutral or optimistic score
// and flag the factor as Defaulted so callers (and tests) can observe that
// the fallback fired.
package match

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/jobmate/engine-service/internal/models"
)

// Canonical factor weights. Every scoring surface in the service uses this
// single table; the weights sum to 1.
const (
	WeightSkill        = 0.30
	WeightLocation     = 0.20
	WeightPrice        = 0.20
	WeightReputation   = 0.15
	WeightAvailability = 0.15
)

// minJobsForConfidence is the completed-job count below which a
// specialist's rating is discounted proportionally.
const minJobsForConfidence = 5

// Factor is one normalized sub-score. Defaulted is true when the score came
// from a fallback (missing or inconsistent input) rather than real data.
type Factor struct {
	Score     float64 `json:"score"`
	Defaulted bool    `json:"defaulted,omitempty"`
}

// Result is the derived compatibility of one (job, specialist) pair. It is
// computed on demand and never stored.
type Result struct {
	Score int `json:"score"` // 0–100

	SkillMatch        Factor `json:"skill_match"`
	LocationProximity Factor `json:"location_proximity"`
	PriceMatch        Factor `json:"price_match"`
	ReputationScore   Factor `json:"reputation_score"`
	AvailabilityMatch Factor `json:"availability_match"`

	DistanceKm float64 `json:"distance_km"`
}

// Compute scores a specialist against a job. Pure and deterministic: equal
// inputs always produce equal results.
func Compute(job *models.Job, sp *models.Specialist) Result {
	skill := skillScore(job.RequiredSkills, sp.Skills)
	dist := haversineKm(job.Latitude, job.Longitude, sp.Latitude, sp.Longitude)
	location := locationScore(dist, sp.ServiceRadiusKm)
	price := priceScore(job.BudgetMin, job.BudgetMax, sp.HourlyRateMin, sp.HourlyRateMax)
	reputation := reputationScore(sp.Rating, sp.CompletedJobs)
	avail := availabilityScore(job.Urgency, []byte(sp.Availability), sp.ResponseTimeMinutes)

	overall := WeightSkill*skill.Score +
		WeightLocation*location.Score +
		WeightPrice*price.Score +
		WeightReputation*reputation.Score +
		WeightAvailability*avail.Score

	return Result{
		Score:             int(math.Round(overall * 100)),
		SkillMatch:        skill,
		LocationProximity: location,
		PriceMatch:        price,
		ReputationScore:   reputation,
		AvailabilityMatch: avail,
		DistanceKm:        dist,
	}
}

// skillScore is the fraction of the job's required skills present in the
// specialist's skill set, case-insensitive exact match. A job with no
// required skills matches everyone.
func skillScore(required, offered []string) Factor {
	req := normalizeSkillSet(required)
	if len(req) == 0 {
		return Factor{Score: 1, Defaulted: true}
	}
	have := normalizeSkillSet(offered)

	matched := 0
	for s := range req {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return Factor{Score: float64(matched) / float64(len(req))}
}

// normalizeSkillSet lowercases, trims and dedupes. The platform stores
// skills as an array, so duplicates are possible.
func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// locationScore decays linearly from 1 at zero distance to 0 at the
// specialist's service radius. Distance at or beyond the radius scores
// exactly 0.
func locationScore(distKm, radiusKm float64) Factor {
	if radiusKm <= 0 {
		return Factor{Score: 0.5, Defaulted: true}
	}
	if distKm >= radiusKm {
		return Factor{Score: 0}
	}
	return Factor{Score: 1 - distKm/radiusKm}
}

// priceScore is the overlap of the job's budget range with the specialist's
// rate range, measured against the narrower of the two spans. Either range
// being unspecified (or inverted) scores an optimistic 1 with Defaulted set.
func priceScore(budgetMin, budgetMax, rateMin, rateMax *float64) Factor {
	if budgetMin == nil || budgetMax == nil || rateMin == nil || rateMax == nil {
		return Factor{Score: 1, Defaulted: true}
	}
	bMin, bMax := *budgetMin, *budgetMax
	rMin, rMax := *rateMin, *rateMax
	if bMin > bMax || rMin > rMax {
		// Inverted range — treated as unspecified rather than rejected.
		return Factor{Score: 1, Defaulted: true}
	}

	lo := math.Max(bMin, rMin)
	hi := math.Min(bMax, rMax)
	if hi < lo {
		return Factor{Score: 0}
	}

	span := math.Min(bMax-bMin, rMax-rMin)
	if span <= 0 {
		// At least one range is a single point sitting inside the other.
		return Factor{Score: 1}
	}
	return Factor{Score: clamp01((hi - lo) / span)}
}

// reputationScore is rating/5 discounted by a completed-job confidence
// ramp: below minJobsForConfidence the score scales with job count.
func reputationScore(rating float64, completedJobs int) Factor {
	r := clamp01(rating / 5)
	if completedJobs < 0 {
		completedJobs = 0
	}
	confidence := 1.0
	if completedJobs < minJobsForConfidence {
		confidence = float64(completedJobs) / float64(minJobsForConfidence)
	}
	return Factor{Score: r * confidence}
}

// requiredCoverageDays maps job urgency to the number of weekdays the
// specialist must have at least one open slot on, and to the response time
// (minutes) the customer expects.
func requiredCoverageDays(u models.Urgency) (days int, responseWithin int) {
	switch u {
	case models.UrgencyHigh:
		return 5, 60
	case models.UrgencyMedium:
		return 3, 240
	default:
		return 1, 1440
	}
}

// availabilityScore blends weekday coverage against the urgency-implied
// requirement with a response-time factor. An empty or unparseable schedule
// scores a neutral 0.5 with Defaulted set.
func availabilityScore(urgency models.Urgency, schedule []byte, responseTimeMinutes int) Factor {
	var byDay map[string][]string
	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &byDay); err != nil {
			byDay = nil
		}
	}

	openDays := 0
	for _, slots := range byDay {
		if len(slots) > 0 {
			openDays++
		}
	}
	if openDays == 0 {
		return Factor{Score: 0.5, Defaulted: true}
	}

	needDays, within := requiredCoverageDays(urgency)
	coverage := math.Min(1, float64(openDays)/float64(needDays))

	response := 1.0
	if responseTimeMinutes > within {
		response = float64(within) / float64(responseTimeMinutes)
	}

	return Factor{Score: clamp01(0.7*coverage + 0.3*response)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
