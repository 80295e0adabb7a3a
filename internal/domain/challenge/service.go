package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rpalmer/grit/internal/catalog"
	"github.com/rpalmer/grit/internal/domain/profile"
	"github.com/rpalmer/grit/internal/repository"
)

// Generation and adaptation constants. Heuristics carried over from the
// original scoring model; named here so tests can reference them.
const (
	// MaxDaily caps how many challenges one day receives.
	MaxDaily = 3
	// PoolMinResistance is the minimum resistance score for the daily
	// high-resistance pool and for contextual suggestions.
	PoolMinResistance = 6
	// LowEnergyMaxResistance excludes the hardest activities when energy
	// is low.
	LowEnergyMaxResistance = 7
	// HighEnergyMinResistance excludes trivial activities when energy is
	// high.
	HighEnergyMinResistance = 5
	// DecayStep is the per-completion resistance reduction.
	DecayStep = 0.5
	// DecayFloor is the lowest value decay can reach.
	DecayFloor = 3.0
	// AdaptImprovement is how far current resistance must fall below the
	// original before difficulty is escalated.
	AdaptImprovement = 2.0
	// AdaptMinMinutes is the minimum duration of an escalation candidate.
	AdaptMinMinutes = 30
)

// officeCategories restricts office-location suggestions to work-adjacent
// activity types.
var officeCategories = map[catalog.Category]bool{
	catalog.CategoryAdministrative: true,
	catalog.CategoryDigital:        true,
	catalog.CategoryOrganization:   true,
}

// Service generates personalized challenges and tracks their completion.
type Service struct {
	profiles ProfileSource
	history  HistoryStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new challenge service.
func NewService(profiles ProfileSource, history HistoryStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profiles: profiles,
		history:  history,
		logger:   logger,
		now:      time.Now,
	}
}

// GenerateDaily builds up to MaxDaily challenges for the given date from
// the high-resistance pool, maximizing category diversity. Regeneration
// for the same date replaces the prior list.
func (s *Service) GenerateDaily(ctx context.Context, date time.Time) ([]Challenge, error) {
	prof, err := s.completedProfile(ctx)
	if err != nil {
		return nil, err
	}

	pool := highResistancePool(prof.Activities)
	selected := selectDiverse(pool, MaxDaily)

	challenges := make([]Challenge, 0, len(selected))
	for _, r := range selected {
		challenges = append(challenges, Challenge{
			ID:              uuid.NewString(),
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			ResistanceLevel: r.Resistance,
			EstimatedTime:   r.EstimatedTime,
			Rationale:       rationaleFor(r.Category),
			PersonalizedFor: PersonalizedHighResistance,
		})
	}

	hist := s.loadHistory(ctx)
	key := DateKey(date)
	hist.Daily[key] = challenges
	if err := s.history.Save(ctx, hist); err != nil {
		return nil, fmt.Errorf("saving history: %w", err)
	}

	s.logger.Info("daily challenges generated", "date", key, "count", len(challenges), "pool", len(pool))
	return challenges, nil
}

// GenerateContextual filters the rated activities by available time,
// energy level, and location, returning up to MaxDaily suggestions sorted
// by descending resistance. An empty result is a valid outcome, not an
// error. Suggestions are ephemeral and never persisted.
func (s *Service) GenerateContextual(ctx context.Context, energy EnergyLevel, availableMinutes int, location string) ([]Suggestion, error) {
	if !energy.Valid() {
		return nil, fmt.Errorf("%w: energy %q", ErrInvalidInput, energy)
	}
	if availableMinutes <= 0 {
		return nil, fmt.Errorf("%w: available minutes %d", ErrInvalidInput, availableMinutes)
	}

	prof, err := s.completedProfile(ctx)
	if err != nil {
		return nil, err
	}

	var matches []profile.ActivityRating
	for _, r := range prof.Activities {
		if r.EstimatedTime > availableMinutes || r.Resistance < PoolMinResistance {
			continue
		}
		if energy == EnergyLow && r.Resistance > LowEnergyMaxResistance {
			continue
		}
		if energy == EnergyHigh && r.Resistance < HighEnergyMinResistance {
			continue
		}
		if location == "office" && !officeCategories[r.Category] {
			continue
		}
		matches = append(matches, r)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Resistance > matches[j].Resistance
	})
	if len(matches) > MaxDaily {
		matches = matches[:MaxDaily]
	}

	suggestions := make([]Suggestion, 0, len(matches))
	for _, r := range matches {
		suggestions = append(suggestions, Suggestion{
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			ResistanceLevel: r.Resistance,
			EstimatedTime:   r.EstimatedTime,
			Rationale:       rationaleFor(r.Category),
		})
	}
	return suggestions, nil
}

// AdaptDifficulty escalates categories whose resistance has decayed well
// below its original level: it issues a longer catalog activity from the
// same category at a bumped resistance level. Adapted challenges append to
// today's list; an empty result means no category has improved enough.
func (s *Service) AdaptDifficulty(ctx context.Context) ([]Challenge, error) {
	hist := s.loadHistory(ctx)

	var adapted []Challenge
	for _, cat := range catalog.Categories() {
		entry, ok := hist.Decay[cat]
		if !ok || entry.Current >= float64(entry.Original)-AdaptImprovement {
			continue
		}

		var pick *catalog.ActivityDefinition
		for _, def := range catalog.ByCategory(cat) {
			if def.EstimatedTime <= AdaptMinMinutes {
				continue
			}
			if pick == nil || def.EstimatedTime > pick.EstimatedTime {
				d := def
				pick = &d
			}
		}
		if pick == nil {
			continue
		}

		level := entry.Original + 1
		if level > 10 {
			level = 10
		}
		adapted = append(adapted, Challenge{
			ID:              uuid.NewString(),
			Title:           pick.Title,
			Description:     pick.Description,
			Category:        cat,
			ResistanceLevel: level,
			EstimatedTime:   pick.EstimatedTime,
			Rationale: fmt.Sprintf(
				"Your %s resistance dropped from %d to %.1f through practice. Time to raise the bar.",
				cat, entry.Original, entry.Current),
			PersonalizedFor: PersonalizedAdapted,
		})
	}

	if len(adapted) == 0 {
		return nil, nil
	}

	key := DateKey(s.now())
	hist.Daily[key] = append(hist.Daily[key], adapted...)
	if err := s.history.Save(ctx, hist); err != nil {
		return nil, fmt.Errorf("saving history: %w", err)
	}

	s.logger.Info("difficulty adapted", "date", key, "count", len(adapted))
	return adapted, nil
}

// Today returns the challenge list for the current date.
func (s *Service) Today(ctx context.Context) ([]Challenge, error) {
	hist := s.loadHistory(ctx)
	return hist.Daily[DateKey(s.now())], nil
}

// HistorySnapshot returns the full accumulated history.
func (s *Service) HistorySnapshot(ctx context.Context) (*History, error) {
	return s.loadHistory(ctx), nil
}

// highResistancePool filters ratings to those worth challenging: high
// resistance and frequent avoidance.
func highResistancePool(ratings []profile.ActivityRating) []profile.ActivityRating {
	var pool []profile.ActivityRating
	for _, r := range ratings {
		if r.Resistance >= PoolMinResistance && (r.Avoidance == profile.AvoidOften || r.Avoidance == profile.AvoidAlways) {
			pool = append(pool, r)
		}
	}
	return pool
}

// selectDiverse picks at most limit ratings, one per category first (the
// highest-resistance rating of each, categories walked in catalog order),
// then fills remaining slots from the rest of the pool by descending
// resistance. Ties resolve to assessment order, keeping selection
// deterministic.
func selectDiverse(pool []profile.ActivityRating, limit int) []profile.ActivityRating {
	taken := make(map[int]bool, limit)
	var selected []profile.ActivityRating

	for _, cat := range catalog.Categories() {
		if len(selected) == limit {
			break
		}
		best := -1
		for i, r := range pool {
			if r.Category != cat || taken[i] {
				continue
			}
			if best == -1 || r.Resistance > pool[best].Resistance {
				best = i
			}
		}
		if best >= 0 {
			taken[best] = true
			selected = append(selected, pool[best])
		}
	}

	if len(selected) < limit {
		rest := make([]int, 0, len(pool))
		for i := range pool {
			if !taken[i] {
				rest = append(rest, i)
			}
		}
		sort.SliceStable(rest, func(a, b int) bool {
			return pool[rest[a]].Resistance > pool[rest[b]].Resistance
		})
		for _, i := range rest {
			if len(selected) == limit {
				break
			}
			selected = append(selected, pool[i])
		}
	}

	return selected
}

func (s *Service) completedProfile(ctx context.Context) (*profile.ResistanceProfile, error) {
	prof, err := s.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if !prof.Completed {
		return nil, ErrProfileIncomplete
	}
	return prof, nil
}

// loadHistory substitutes an empty history on any load failure, matching
// the documented defaults-on-missing behavior.
func (s *Service) loadHistory(ctx context.Context) *History {
	hist, err := s.history.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("history load failed, using defaults", "error", err)
		}
		return NewHistory()
	}
	if hist.Daily == nil {
		hist.Daily = map[string][]Challenge{}
	}
	if hist.Completed == nil {
		hist.Completed = []Challenge{}
	}
	if hist.Decay == nil {
		hist.Decay = map[catalog.Category]DecayEntry{}
	}
	return hist
}
