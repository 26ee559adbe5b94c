package models

import (
	"fmt"
	"time"
)

// SuggestionMode selects which generator handler produces suggestions.
type SuggestionMode string

const (
	ModeMatching     SuggestionMode = "MATCHING"
	ModeProjectSetup SuggestionMode = "PROJECT_SETUP"
	ModeProfile      SuggestionMode = "PROFILE"
	ModePayments     SuggestionMode = "PAYMENTS"
	ModeMarketplace  SuggestionMode = "MARKETPLACE"
	ModeGeneral      SuggestionMode = "GENERAL"
)

func ParseSuggestionMode(s string) (SuggestionMode, error) {
	m := SuggestionMode(s)
	switch m {
	case ModeMatching, ModeProjectSetup, ModeProfile, ModePayments, ModeMarketplace, ModeGeneral:
		return m, nil
	}
	return "", fmt.Errorf("unknown suggestion mode %q", s)
}

// Suggestion priorities. The proactivity post-filter keys off these.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Suggestion is one generated assistant recommendation, stored in the
// suggestions collection.
type Suggestion struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	UserID    string         `bson:"user_id" json:"user_id"`
	Mode      SuggestionMode `bson:"mode" json:"mode"`
	Context   string         `bson:"context,omitempty" json:"context,omitempty"`
	Title     string         `bson:"title" json:"title"`
	Content   string         `bson:"content" json:"content"`
	Priority  int            `bson:"priority" json:"priority"` // 1=low 2=medium 3=high
	ActionURL string         `bson:"action_url,omitempty" json:"action_url,omitempty"`
	Active    bool           `bson:"active" json:"active"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}
