package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// keywordRule maps trigger substrings to a table key. Rules are evaluated
// in order and the first match wins — ambiguous queries are not scored.
type keywordRule struct {
	keywords []string
	value    string
}

var categoryRules = []keywordRule{
	{[]string{"website", "web", "frontend", "backend", "api"}, "Web Development"},
	{[]string{"mobile", "app", "ios", "android"}, "Mobile Development"},
	{[]string{"logo", "design", "ui", "ux", "branding"}, "Design"},
	{[]string{"article", "writing", "translat", "copywrit", "content"}, "Writing & Translation"},
	{[]string{"seo", "marketing", "ads", "campaign", "social media"}, "Marketing"},
	{[]string{"cleaning", "plumbing", "gardening", "moving", "home"}, "Home Services"},
	{[]string{"repair", "fix", "maintenance", "broken"}, "Repair & Maintenance"},
	{[]string{"consult", "strategy", "audit", "advice"}, "Consulting"},
}

var complexityRules = []keywordRule{
	{[]string{"enterprise", "large scale", "mission critical"}, "Enterprise"},
	{[]string{"advanced", "complex", "sophisticated"}, "Advanced"},
	{[]string{"simple", "basic", "small", "quick"}, "Basic"},
}

var experienceRules = []keywordRule{
	{[]string{"master", "guru", "top rated"}, "Master"},
	{[]string{"expert", "senior", "experienced"}, "Expert"},
	{[]string{"junior", "entry", "beginner", "cheap"}, "Entry"},
}

var regionRules = []keywordRule{
	{[]string{"north america", "usa", "united states", "canada"}, "North America"},
	{[]string{"western europe", "uk", "germany", "france", "netherlands"}, "Western Europe"},
	{[]string{"eastern europe", "poland", "ukraine", "romania"}, "Eastern Europe"},
	{[]string{"asia", "india", "philippines", "vietnam"}, "Asia-Pacific"},
	{[]string{"latin america", "brazil", "mexico", "argentina"}, "Latin America"},
	{[]string{"remote", "anywhere", "worldwide"}, "Global / Remote"},
}

var hoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hour|hr|day|week)s?\b`)

// FromQuery infers calculator parameters from a natural-language query and
// delegates to Calculate. Matching is lowercase substring, first rule wins;
// anything the query does not pin down falls to the table defaults.
func FromQuery(query string) Estimate {
	q := strings.ToLower(query)

	in := Input{
		Category:   matchRules(categoryRules, q),
		Complexity: matchRules(complexityRules, q),
		Experience: matchRules(experienceRules, q),
		Region:     matchRules(regionRules, q),
	}
	in.Hours, in.Duration = parseDuration(q)

	return Calculate(in)
}

func matchRules(rules []keywordRule, q string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.value
			}
		}
	}
	return "" // Calculate substitutes the table default
}

// parseDuration extracts an hour count from "N hours|days|weeks" (day = 8h,
// week = 40h) and picks the matching duration band. Unparseable input keeps
// the 40-hour default with the Standard band.
func parseDuration(q string) (hours float64, duration string) {
	if strings.Contains(q, "ongoing") || strings.Contains(q, "long-term") || strings.Contains(q, "long term") {
		duration = "Long-term"
	}

	m := hoursPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, duration // Hours<=0 → DefaultHours in Calculate
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil || n <= 0 {
		return 0, duration
	}

	switch m[2] {
	case "hour", "hr":
		hours = n
		if duration == "" {
			duration = "Short-term"
		}
	case "day":
		hours = n * 8
		if duration == "" {
			duration = "Standard"
		}
	case "week":
		hours = n * 40
		if duration == "" {
			if n >= 4 {
				duration = "Long-term"
			} else {
				duration = "Extended"
			}
		}
	}
	return hours, duration
}
