package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
	"github.com/rpalmer/grit/internal/repository"
)

// Aggregate keys in engine_state.
const (
	keyResistanceProfile = "resistance_profile"
	keyChallengeHistory  = "challenge_history"
)

// loadDocument reads one aggregate document into out.
func loadDocument(ctx context.Context, db *DB, key string, out any) error {
	var payload string
	err := db.QueryRowContext(ctx,
		`SELECT payload FROM engine_state WHERE key = ?`, key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: loading %s: %v", repository.ErrStorageUnavailable, key, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// saveDocument upserts one aggregate document. The write is a single
// statement, so readers never observe a partial state.
func saveDocument(ctx context.Context, db *DB, key string, val any) error {
	payload, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO engine_state (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: saving %s: %v", repository.ErrStorageUnavailable, key, err)
	}
	return nil
}

// ProfileStore implements profile.Store on SQLite.
type ProfileStore struct {
	db *DB
}

// NewProfileStore creates a new ProfileStore.
func NewProfileStore(db *DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Load retrieves the stored resistance profile.
func (s *ProfileStore) Load(ctx context.Context) (*profile.ResistanceProfile, error) {
	var prof profile.ResistanceProfile
	if err := loadDocument(ctx, s.db, keyResistanceProfile, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// Save persists the full resistance profile.
func (s *ProfileStore) Save(ctx context.Context, p *profile.ResistanceProfile) error {
	return saveDocument(ctx, s.db, keyResistanceProfile, p)
}

// HistoryStore implements challenge.HistoryStore on SQLite.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Load retrieves the stored challenge history.
func (s *HistoryStore) Load(ctx context.Context) (*challenge.History, error) {
	var hist challenge.History
	if err := loadDocument(ctx, s.db, keyChallengeHistory, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}

// Save persists the full challenge history.
func (s *HistoryStore) Save(ctx context.Context, h *challenge.History) error {
	return saveDocument(ctx, s.db, keyChallengeHistory, h)
}
