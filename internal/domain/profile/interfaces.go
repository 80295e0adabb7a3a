package profile

import "context"

// Store provides persistence for the resistance profile. Load returns
// repository.ErrNotFound when no profile has been saved yet.
type Store interface {
	Load(ctx context.Context) (*ResistanceProfile, error)
	Save(ctx context.Context, p *ResistanceProfile) error
}
