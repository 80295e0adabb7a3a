package challenge

import (
	"time"

	"github.com/rpalmer/grit/internal/catalog"
)

// Personalization tags describing why a challenge was issued.
const (
	PersonalizedHighResistance = "high-resistance"
	PersonalizedAdapted        = "difficulty-adapted"
)

// Challenge is one issued resistance challenge. Completion state is the
// only mutable part; challenges are never deleted so history stays
// analyzable.
type Challenge struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        catalog.Category `json:"category"`
	ResistanceLevel int              `json:"resistance_level"`
	EstimatedTime   int              `json:"estimated_time"`
	Rationale       string           `json:"rationale"`
	PersonalizedFor string           `json:"personalized_for"`
	Completed       bool             `json:"completed"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}

// DecayEntry models the reduction of a category's resistance as the user
// repeatedly completes challenges in it. Original is fixed at the first
// completion; Current never drops below the decay floor. Decay is
// intentionally never rolled back when a completion is undone: it reflects
// historical practice, not current bookkeeping.
type DecayEntry struct {
	Original    int     `json:"original_resistance"`
	Completions int     `json:"completions"`
	Current     float64 `json:"current_resistance"`
}

// History is the process-wide challenge accumulator.
type History struct {
	// Daily maps a calendar date key (2006-01-02) to that day's issued
	// challenges, regeneration replaces the whole entry.
	Daily map[string][]Challenge `json:"daily_challenges"`
	// Completed is an append-only log of completion snapshots.
	Completed []Challenge `json:"completed_challenges"`
	// AMCCStrength is the 0–100 cumulative strength score.
	AMCCStrength int `json:"amcc_strength"`
	// Decay tracks per-category resistance decay.
	Decay map[catalog.Category]DecayEntry `json:"resistance_decay"`
}

// NewHistory returns an empty history with documented defaults.
func NewHistory() *History {
	return &History{
		Daily:     map[string][]Challenge{},
		Completed: []Challenge{},
		Decay:     map[catalog.Category]DecayEntry{},
	}
}

// DateKey formats t as the calendar-date key used by Daily.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Suggestion is an ephemeral contextual recommendation. Unlike daily
// challenges, suggestions are not persisted.
type Suggestion struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        catalog.Category `json:"category"`
	ResistanceLevel int              `json:"resistance_level"`
	EstimatedTime   int              `json:"estimated_time"`
	Rationale       string           `json:"rationale"`
}

// EnergyLevel constrains contextual suggestion difficulty.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Valid reports whether e is a known energy level.
func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}
