package profile

import "github.com/rpalmer/grit/internal/catalog"

// Threshold constants from the scoring model. Tunable, but changing them
// changes which categories qualify for challenge generation.
const (
	// HighResistanceThreshold is the minimum mean resistance for a
	// category to count as high-resistance.
	HighResistanceThreshold = 6.0
	// HighAvoidanceThreshold is the minimum mean avoidance value for a
	// category to count as high-resistance.
	HighAvoidanceThreshold = 2.5
	// FalsePositiveMaxResistance bounds the resistance score below which
	// a frequently-avoided activity is flagged as inconsistent.
	FalsePositiveMaxResistance = 3
	// combinedDivisor normalizes resistance + 2*avoidance into (0, 1].
	combinedDivisor = 30.0
)

// Analysis is the derived output of profiling a full rating set.
type Analysis struct {
	CategoryAverages map[catalog.Category]CategoryAverage
	HighResistance   []catalog.Category
	FalsePositives   []ActivityRating
}

// Analyze recomputes per-category statistics from scratch. It is a pure
// function of ratings: running it again on the same input yields the same
// output, so re-analysis after completion is idempotent.
func Analyze(ratings []ActivityRating) Analysis {
	sums := make(map[catalog.Category]*categorySum)
	for _, r := range ratings {
		s, ok := sums[r.Category]
		if !ok {
			s = &categorySum{}
			sums[r.Category] = s
		}
		s.resistance += float64(r.Resistance)
		s.avoidance += float64(r.Avoidance.Value())
		s.count++
	}

	averages := make(map[catalog.Category]CategoryAverage, len(sums))
	var high []catalog.Category
	for _, cat := range catalog.Categories() {
		s, ok := sums[cat]
		if !ok || s.count == 0 {
			continue
		}
		avg := CategoryAverage{
			Resistance: s.resistance / float64(s.count),
			Avoidance:  s.avoidance / float64(s.count),
		}
		avg.Combined = (avg.Resistance + avg.Avoidance*2) / combinedDivisor
		averages[cat] = avg

		if avg.Resistance >= HighResistanceThreshold && avg.Avoidance >= HighAvoidanceThreshold {
			high = append(high, cat)
		}
	}

	var falsePositives []ActivityRating
	for _, r := range ratings {
		if r.Resistance <= FalsePositiveMaxResistance && (r.Avoidance == AvoidOften || r.Avoidance == AvoidAlways) {
			falsePositives = append(falsePositives, r)
		}
	}

	return Analysis{
		CategoryAverages: averages,
		HighResistance:   high,
		FalsePositives:   falsePositives,
	}
}

type categorySum struct {
	resistance float64
	avoidance  float64
	count      int
}
