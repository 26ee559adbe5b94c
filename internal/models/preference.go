package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Proactivity controls how many assistant suggestions are surfaced:
// 1 keeps only high-priority suggestions, 2 keeps medium and up, 3 keeps all.
const (
	ProactivityQuiet    = 1
	ProactivityBalanced = 2
	ProactivityEager    = 3

	DefaultProactivity = ProactivityBalanced
)

// UserPreference mirrors the user_preferences table.
type UserPreference struct {
	UserID      string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Proactivity int    `gorm:"column:proactivity" json:"proactivity"` // 1–3

	PreferredCategories pq.StringArray `gorm:"column:preferred_categories;type:text[]" json:"preferred_categories"`

	// Free-form budget preferences (JSONB, shape owned by the frontend).
	Budget datatypes.JSON `gorm:"column:budget;type:jsonb" json:"budget"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (UserPreference) TableName() string { return "user_preferences" }

// EffectiveProactivity clamps the stored value into its valid range and
// substitutes the default when unset.
func (p *UserPreference) EffectiveProactivity() int {
	if p == nil || p.Proactivity < ProactivityQuiet || p.Proactivity > ProactivityEager {
		return DefaultProactivity
	}
	return p.Proactivity
}
