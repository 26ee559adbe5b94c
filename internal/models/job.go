package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusExpired    JobStatus = "expired"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error
// for unknown values.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled, JobStatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return u, nil
	}
	return "", fmt.Errorf("unknown urgency %q", s)
}

// Job mirrors the jobs table. Budget bounds are optional; a job with no
// budget is matched optimistically (see internal/match).
type Job struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CustomerID  string    `gorm:"column:customer_id;type:uuid;index" json:"customer_id"`
	Title       string    `gorm:"column:title;type:text" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:text;index" json:"category"`
	Status      JobStatus `gorm:"column:status;type:text;index" json:"status"`
	Urgency     Urgency   `gorm:"column:urgency;type:text" json:"urgency"`

	RequiredSkills pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`

	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`

	BudgetMin *float64 `gorm:"column:budget_min" json:"budget_min,omitempty"`
	BudgetMax *float64 `gorm:"column:budget_max" json:"budget_max,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Job) TableName() string { return "jobs" }
