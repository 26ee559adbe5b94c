package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Specialist mirrors the specialists table. Skills keep array semantics from
// the platform (duplicates possible); scoring dedupes them.
//
// Availability is a JSONB mapping of weekday name → time-slot ids, e.g.
// {"monday": ["morning", "afternoon"], "friday": ["evening"]}.
type Specialist struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text" json:"name"`

	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`

	Latitude        float64 `gorm:"column:latitude" json:"latitude"`
	Longitude       float64 `gorm:"column:longitude" json:"longitude"`
	ServiceRadiusKm float64 `gorm:"column:service_radius_km" json:"service_radius_km"`

	HourlyRateMin *float64 `gorm:"column:hourly_rate_min" json:"hourly_rate_min,omitempty"`
	HourlyRateMax *float64 `gorm:"column:hourly_rate_max" json:"hourly_rate_max,omitempty"`
	PreferredRate *float64 `gorm:"column:preferred_rate" json:"preferred_rate,omitempty"`

	Availability datatypes.JSON `gorm:"column:availability;type:jsonb" json:"availability"`

	Rating              float64 `gorm:"column:rating" json:"rating"` // 0–5
	CompletedJobs       int     `gorm:"column:completed_jobs" json:"completed_jobs"`
	ResponseTimeMinutes int     `gorm:"column:response_time_minutes" json:"response_time_minutes"`
	VerificationLevel   int     `gorm:"column:verification_level" json:"verification_level"` // 0–3

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Specialist) TableName() string { return "specialists" }
