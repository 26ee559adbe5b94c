package suggest

import "github.com/jobmate/engine-service/internal/models"

// Mode handlers. Each walks its conditionals against the snapshot and
// appends zero or more suggestions; priorities drive the proactivity
// post-filter in Generate.

func (g *Generator) matchingSuggestions(snap *Snapshot, _ string) []models.Suggestion {
	var out []models.Suggestion

	if snap.SkillCount == 0 {
		out = append(out, models.Suggestion{
			Title:     "Add your skills",
			Content:   "You haven't listed any skills yet. Matching can't rank jobs for you until it knows what you do.",
			Priority:  models.PriorityHigh,
			ActionURL: "/profile/skills",
		})
	}

	if snap.SkillCount > 0 && snap.OpenJobs == 0 {
		out = append(out, models.Suggestion{
			Title:     "Browse matching jobs",
			Content:   "There are open jobs matching your skill set. Take a look before they fill up.",
			Priority:  models.PriorityMedium,
			ActionURL: "/jobs/matches",
		})
	}

	if snap.Rating > 0 && snap.Rating < 3.5 && snap.CompletedJobs > 0 {
		out = append(out, models.Suggestion{
			Title:     "Improve your match ranking",
			Content:   "Your rating is pulling your match score down. Completing a few small jobs well is the quickest way to recover it.",
			Priority:  models.PriorityMedium,
			ActionURL: "/jobs/browse",
		})
	}

	return out
}

func (g *Generator) projectSetupSuggestions(snap *Snapshot, contextTag string) []models.Suggestion {
	var out []models.Suggestion

	if snap.OpenJobs == 0 {
		out = append(out, models.Suggestion{
			Title:     "Post your first job",
			Content:   "Describe what you need done and let specialists come to you.",
			Priority:  models.PriorityLow,
			ActionURL: "/jobs/new",
		})
	}

	if snap.OpenJobs > 3 {
		out = append(out, models.Suggestion{
			Title:     "You have several open jobs",
			Content:   "Jobs without activity expire after a while. Close the ones you no longer need.",
			Priority:  models.PriorityMedium,
			ActionURL: "/jobs/mine",
		})
	}

	if contextTag == "draft" {
		out = append(out, models.Suggestion{
			Title:     "Finish your draft job",
			Content:   "A job draft is waiting to be published. Add a budget range to attract better matches.",
			Priority:  models.PriorityHigh,
			ActionURL: "/jobs/drafts",
		})
	}

	return out
}

func (g *Generator) profileSuggestions(snap *Snapshot, _ string) []models.Suggestion {
	var out []models.Suggestion

	if !snap.ProfileComplete {
		out = append(out, models.Suggestion{
			Title:     "Complete your profile",
			Content:   "Profiles with a photo, description and service area get matched far more often.",
			Priority:  models.PriorityHigh,
			ActionURL: "/profile/edit",
		})
	}

	if !snap.HasRates {
		out = append(out, models.Suggestion{
			Title:     "Set your hourly rates",
			Content:   "Without a rate range, price matching assumes you fit every budget — set one to filter out low-ball offers.",
			Priority:  models.PriorityMedium,
			ActionURL: "/profile/rates",
		})
	}

	if snap.SkillCount > 0 && snap.SkillCount < 3 {
		out = append(out, models.Suggestion{
			Title:     "List more skills",
			Content:   "Specialists with three or more skills appear in noticeably more searches.",
			Priority:  models.PriorityLow,
			ActionURL: "/profile/skills",
		})
	}

	return out
}

func (g *Generator) paymentSuggestions(snap *Snapshot, _ string) []models.Suggestion {
	var out []models.Suggestion

	if snap.PendingPayments > 0 {
		out = append(out, models.Suggestion{
			Title:     "You have pending payments",
			Content:   "Settle open payments to keep your completed jobs counting toward your reputation.",
			Priority:  models.PriorityHigh,
			ActionURL: "/payments",
		})
	}

	if !snap.HasPaymentMethod {
		out = append(out, models.Suggestion{
			Title:     "Add a payment method",
			Content:   "You'll need one on file before hiring a specialist or receiving payouts.",
			Priority:  models.PriorityMedium,
			ActionURL: "/payments/methods",
		})
	}

	return out
}

func (g *Generator) marketplaceSuggestions(snap *Snapshot, _ string) []models.Suggestion {
	var out []models.Suggestion

	if len(snap.PreferredCategories) == 0 {
		out = append(out, models.Suggestion{
			Title:     "Pick your favorite categories",
			Content:   "Tell us which categories interest you and the marketplace feed will follow.",
			Priority:  models.PriorityLow,
			ActionURL: "/marketplace/preferences",
		})
	}

	if snap.CompletedJobs > 10 {
		out = append(out, models.Suggestion{
			Title:     "Feature your services",
			Content:   "With your track record, a featured marketplace listing would stand out.",
			Priority:  models.PriorityMedium,
			ActionURL: "/marketplace/feature",
		})
	}

	return out
}

func (g *Generator) generalSuggestions(snap *Snapshot, _ string) []models.Suggestion {
	out := []models.Suggestion{{
		Title:     "Explore what JobMate can do",
		Content:   "Try the price calculator or ask the assistant to find specialists near you.",
		Priority:  models.PriorityLow,
		ActionURL: "/help/tour",
	}}

	if !snap.ProfileComplete {
		out = append(out, models.Suggestion{
			Title:     "Your profile needs attention",
			Content:   "A complete profile is the single biggest factor in getting matched.",
			Priority:  models.PriorityMedium,
			ActionURL: "/profile/edit",
		})
	}

	return out
}
