package challenge

import (
	"context"

	"github.com/rpalmer/grit/internal/domain/profile"
)

// ProfileSource provides read access to the finalized resistance profile.
type ProfileSource interface {
	Load(ctx context.Context) (*profile.ResistanceProfile, error)
}

// HistoryStore provides persistence for challenge history. Load returns
// repository.ErrNotFound when no history has been saved yet.
type HistoryStore interface {
	Load(ctx context.Context) (*History, error)
	Save(ctx context.Context, h *History) error
}
