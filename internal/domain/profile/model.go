package profile

import (
	"time"

	"github.com/rpalmer/grit/internal/catalog"
)

// AvoidanceFrequency is the self-reported rate at which an activity is
// avoided.
type AvoidanceFrequency string

const (
	AvoidNever     AvoidanceFrequency = "never"
	AvoidSometimes AvoidanceFrequency = "sometimes"
	AvoidOften     AvoidanceFrequency = "often"
	AvoidAlways    AvoidanceFrequency = "always"
)

// Valid reports whether f is one of the enumerated frequencies.
func (f AvoidanceFrequency) Valid() bool {
	switch f {
	case AvoidNever, AvoidSometimes, AvoidOften, AvoidAlways:
		return true
	}
	return false
}

// Value maps the frequency onto the 1–4 scale used for averaging.
func (f AvoidanceFrequency) Value() int {
	switch f {
	case AvoidNever:
		return 1
	case AvoidSometimes:
		return 2
	case AvoidOften:
		return 3
	case AvoidAlways:
		return 4
	}
	return 0
}

// ActivityRating is one assessment answer. Immutable once recorded.
type ActivityRating struct {
	Category      catalog.Category   `json:"category"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	EstimatedTime int                `json:"estimated_time"`
	Resistance    int                `json:"resistance"`
	Avoidance     AvoidanceFrequency `json:"avoidance"`
	RatedAt       time.Time          `json:"rated_at"`
}

// CategoryAverage holds per-category aggregates. Values are unrounded;
// rounding is a display concern handled at the serving boundary.
type CategoryAverage struct {
	Resistance float64 `json:"resistance"`
	Avoidance  float64 `json:"avoidance"`
	Combined   float64 `json:"combined"`
}

// ResistanceProfile is the per-user assessment aggregate. The derived
// fields (CategoryAverages, HighResistance, FalsePositives) are recomputed
// from Activities and are absent until Completed is true.
type ResistanceProfile struct {
	Completed        bool                                 `json:"completed"`
	Activities       []ActivityRating                     `json:"activities"`
	CategoryAverages map[catalog.Category]CategoryAverage `json:"category_averages,omitempty"`
	HighResistance   []catalog.Category                   `json:"high_resistance_categories,omitempty"`
	FalsePositives   []ActivityRating                     `json:"false_positives,omitempty"`
}

// NewProfile returns an empty, not-yet-completed profile.
func NewProfile() *ResistanceProfile {
	return &ResistanceProfile{Activities: []ActivityRating{}}
}

// Progress describes how far through the assessment the user is.
type Progress struct {
	Rated     int  `json:"rated"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}
