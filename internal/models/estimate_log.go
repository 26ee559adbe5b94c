package models

import "time"

// EstimateLog records one price-calculator invocation in the estimate_log
// collection. PricingService aggregates these per user to derive
// personalized calculator defaults.
type EstimateLog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Category   string    `bson:"category" json:"category"`
	Complexity string    `bson:"complexity" json:"complexity"`
	Experience string    `bson:"experience" json:"experience"`
	Region     string    `bson:"region" json:"region"`
	Duration   string    `bson:"duration" json:"duration"`
	Hours      float64   `bson:"hours" json:"hours"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
