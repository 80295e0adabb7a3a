package challenge

import (
	"context"
	"fmt"
	"math"
)

// ToggleCompletion flips the completion state of a challenge in today's
// list. Completing appends a snapshot to the completion log, recomputes
// AMCC strength, and advances the category's resistance decay. Undoing a
// completion removes the snapshot and recomputes strength, but leaves
// decay untouched.
func (s *Service) ToggleCompletion(ctx context.Context, id string) (*Challenge, error) {
	hist := s.loadHistory(ctx)
	key := DateKey(s.now())

	today := hist.Daily[key]
	idx := -1
	for i := range today {
		if today[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChallengeNotFound, id)
	}

	ch := &today[idx]
	if !ch.Completed {
		now := s.now()
		ch.Completed = true
		ch.CompletedAt = &now
		hist.Completed = append(hist.Completed, *ch)
		s.applyDecay(hist, ch)
	} else {
		ch.Completed = false
		ch.CompletedAt = nil
		hist.Completed = removeSnapshot(hist.Completed, id)
	}
	hist.AMCCStrength = amccStrength(hist.Completed)
	hist.Daily[key] = today

	if err := s.history.Save(ctx, hist); err != nil {
		return nil, fmt.Errorf("saving history: %w", err)
	}

	s.logger.Info("challenge toggled",
		"id", id,
		"completed", ch.Completed,
		"amcc_strength", hist.AMCCStrength)

	result := *ch
	return &result, nil
}

// applyDecay advances the category decay for a freshly completed
// challenge. The original resistance is pinned at the category's first
// completion.
func (s *Service) applyDecay(hist *History, ch *Challenge) {
	entry, ok := hist.Decay[ch.Category]
	if !ok {
		entry = DecayEntry{Original: ch.ResistanceLevel}
	}
	entry.Completions++
	entry.Current = float64(entry.Original) - DecayStep*float64(entry.Completions)
	if entry.Current < DecayFloor {
		entry.Current = DecayFloor
	}
	hist.Decay[ch.Category] = entry
}

// amccStrength scores accumulated completions on a 0–100 scale:
// round(100 * sum(resistance) / (10 * count)). Zero with no completions.
func amccStrength(completed []Challenge) int {
	if len(completed) == 0 {
		return 0
	}
	sum := 0
	for _, ch := range completed {
		sum += ch.ResistanceLevel
	}
	return int(math.Round(100 * float64(sum) / (10 * float64(len(completed)))))
}

func removeSnapshot(completed []Challenge, id string) []Challenge {
	for i := range completed {
		if completed[i].ID == id {
			return append(completed[:i], completed[i+1:]...)
		}
	}
	return completed
}
