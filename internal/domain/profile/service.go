package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpalmer/grit/internal/catalog"
	"github.com/rpalmer/grit/internal/repository"
)

// Service drives the resistance assessment: it walks the user through
// rating every catalog entry exactly once and finalizes the profile when
// the last rating lands.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new profile service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SubmitRating records a rating for the next unrated catalog entry and
// persists the profile before returning, so a crash never loses prior
// submissions. When the final entry is rated the profile is analyzed and
// marked completed in the same save.
func (s *Service) SubmitRating(ctx context.Context, resistance int, avoidance AvoidanceFrequency) (*Progress, error) {
	if resistance < 1 || resistance > 10 {
		return nil, fmt.Errorf("%w: resistance %d not in [1,10]", ErrInvalidInput, resistance)
	}
	if !avoidance.Valid() {
		return nil, fmt.Errorf("%w: avoidance %q", ErrInvalidInput, avoidance)
	}

	prof := s.load(ctx)
	if prof.Completed {
		return nil, ErrAssessmentComplete
	}

	defs := catalog.Activities()
	idx := len(prof.Activities)
	if idx >= len(defs) {
		// Defensive: completed should already be set.
		return nil, ErrAssessmentComplete
	}

	def := defs[idx]
	prof.Activities = append(prof.Activities, ActivityRating{
		Category:      def.Category,
		Title:         def.Title,
		Description:   def.Description,
		EstimatedTime: def.EstimatedTime,
		Resistance:    resistance,
		Avoidance:     avoidance,
		RatedAt:       s.now(),
	})

	if len(prof.Activities) == len(defs) {
		s.finalize(prof)
		s.logger.Info("assessment complete",
			"ratings", len(prof.Activities),
			"high_resistance_categories", len(prof.HighResistance),
			"false_positives", len(prof.FalsePositives))
	}

	if err := s.store.Save(ctx, prof); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	return &Progress{
		Rated:     len(prof.Activities),
		Total:     len(defs),
		Completed: prof.Completed,
	}, nil
}

// Progress reports how many catalog entries have been rated.
func (s *Service) Progress(ctx context.Context) (*Progress, error) {
	prof := s.load(ctx)
	return &Progress{
		Rated:     len(prof.Activities),
		Total:     catalog.Size(),
		Completed: prof.Completed,
	}, nil
}

// Get returns the current profile, substituting an empty one when nothing
// has been stored yet.
func (s *Service) Get(ctx context.Context) (*ResistanceProfile, error) {
	return s.load(ctx), nil
}

// Reanalyze recomputes the derived fields from the stored ratings and
// saves the result. Deterministic recomputation, not additive.
func (s *Service) Reanalyze(ctx context.Context) (*ResistanceProfile, error) {
	prof := s.load(ctx)
	if !prof.Completed {
		return prof, nil
	}
	s.finalize(prof)
	if err := s.store.Save(ctx, prof); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return prof, nil
}

func (s *Service) finalize(prof *ResistanceProfile) {
	analysis := Analyze(prof.Activities)
	prof.Completed = true
	prof.CategoryAverages = analysis.CategoryAverages
	prof.HighResistance = analysis.HighResistance
	prof.FalsePositives = analysis.FalsePositives
}

// load substitutes documented defaults on any load failure: a missing
// profile is expected before the first submission, and a broken store
// must not make reads fatal.
func (s *Service) load(ctx context.Context) *ResistanceProfile {
	prof, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("profile load failed, using defaults", "error", err)
		}
		return NewProfile()
	}
	if prof.Activities == nil {
		prof.Activities = []ActivityRating{}
	}
	return prof
}
