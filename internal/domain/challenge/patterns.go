package challenge

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rpalmer/grit/internal/catalog"
)

// CorrelationThreshold is the routine-overlap ratio above which a
// correlation insight is emitted.
const CorrelationThreshold = 0.6

// PatternReport is a read-only behavioral summary over the completion log.
type PatternReport struct {
	TotalCompletions    int              `json:"total_completions"`
	WeekdayCounts       map[string]int   `json:"weekday_counts"`
	PeakWeekday         string           `json:"peak_weekday,omitempty"`
	StrongestCategory   catalog.Category `json:"strongest_category,omitempty"`
	WeakestCategory     catalog.Category `json:"weakest_category,omitempty"`
	FalsePositiveAlerts []string         `json:"false_positive_alerts,omitempty"`
	RoutineOverlap      float64          `json:"routine_overlap"`
	CorrelationInsight  string           `json:"correlation_insight,omitempty"`
}

// AnalyzePatterns mines the completion log for behavioral patterns and
// correlates completion dates with externally reported routine-completion
// dates. It never mutates state.
func (s *Service) AnalyzePatterns(ctx context.Context, routineDates []string) (*PatternReport, error) {
	hist := s.loadHistory(ctx)

	report := &PatternReport{
		TotalCompletions: len(hist.Completed),
		WeekdayCounts:    map[string]int{},
	}

	categoryCounts := map[catalog.Category]int{}
	completionDates := map[string]bool{}
	for _, ch := range hist.Completed {
		if ch.CompletedAt != nil {
			report.WeekdayCounts[ch.CompletedAt.Weekday().String()]++
			completionDates[DateKey(*ch.CompletedAt)] = true
		}
		categoryCounts[ch.Category]++
	}

	report.PeakWeekday = peakWeekday(report.WeekdayCounts)
	report.StrongestCategory, report.WeakestCategory = categoryExtremes(categoryCounts)
	report.FalsePositiveAlerts = s.falsePositiveAlerts(ctx)

	if len(completionDates) > 0 {
		routine := make(map[string]bool, len(routineDates))
		for _, d := range routineDates {
			routine[d] = true
		}
		overlap := 0
		for d := range completionDates {
			if routine[d] {
				overlap++
			}
		}
		report.RoutineOverlap = float64(overlap) / float64(len(completionDates))
		if report.RoutineOverlap > CorrelationThreshold {
			pct := int(math.Round(report.RoutineOverlap * 100))
			report.CorrelationInsight = fmt.Sprintf(
				"%d%% of your challenge completions landed on days you also finished your routine. Hard starts carry the whole morning.",
				pct)
		}
	}

	return report, nil
}

// falsePositiveAlerts carries profile-level self-report inconsistencies
// through as actionable strings.
func (s *Service) falsePositiveAlerts(ctx context.Context) []string {
	prof, err := s.profiles.Load(ctx)
	if err != nil {
		return nil
	}
	var alerts []string
	for _, r := range prof.FalsePositives {
		alerts = append(alerts, fmt.Sprintf(
			"You avoid %q %s despite rating its resistance only %d. The barrier may be habit, not difficulty.",
			r.Title, r.Avoidance, r.Resistance))
	}
	return alerts
}

// peakWeekday returns the weekday with the most completions, ties going to
// the earlier weekday so the result is deterministic.
func peakWeekday(counts map[string]int) string {
	best := ""
	bestCount := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

// categoryExtremes returns the categories with the most and fewest
// completions among categories that have any, walking catalog order for
// deterministic ties.
func categoryExtremes(counts map[catalog.Category]int) (strongest, weakest catalog.Category) {
	bestCount, worstCount := 0, 0
	for _, cat := range catalog.Categories() {
		n, ok := counts[cat]
		if !ok {
			continue
		}
		if strongest == "" || n > bestCount {
			strongest = cat
			bestCount = n
		}
		if weakest == "" || n < worstCount {
			weakest = cat
			worstCount = n
		}
	}
	return strongest, weakest
}
