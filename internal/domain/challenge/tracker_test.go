package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpalmer/grit/internal/catalog"
	"github.com/rpalmer/grit/internal/domain/challenge"
)

func seedToday(store *memHistoryStore, challenges ...challenge.Challenge) {
	hist := challenge.NewHistory()
	hist.Daily[challenge.DateKey(time.Now())] = challenges
	store.hist = hist
}

func TestToggleCompletion_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	seedToday(store, challenge.Challenge{ID: "c1", Category: catalog.CategoryHealth, ResistanceLevel: 8})

	_, err := svc.ToggleCompletion(ctx, "missing")
	require.ErrorIs(t, err, challenge.ErrChallengeNotFound)

	// State unchanged, nothing written.
	require.Zero(t, store.saves)
	require.Empty(t, store.hist.Completed)
}

func TestToggleCompletion_CompleteThenUndo(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	seedToday(store, challenge.Challenge{ID: "c1", Category: catalog.CategoryHealth, ResistanceLevel: 8})

	done, err := svc.ToggleCompletion(ctx, "c1")
	require.NoError(t, err)
	require.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	hist := store.hist
	require.Len(t, hist.Completed, 1)
	require.Equal(t, 80, hist.AMCCStrength)
	decay := hist.Decay[catalog.CategoryHealth]
	require.Equal(t, challenge.DecayEntry{Original: 8, Completions: 1, Current: 7.5}, decay)

	undone, err := svc.ToggleCompletion(ctx, "c1")
	require.NoError(t, err)
	require.False(t, undone.Completed)
	require.Nil(t, undone.CompletedAt)

	hist = store.hist
	require.Empty(t, hist.Completed)
	require.Zero(t, hist.AMCCStrength)
	// Decay reflects historical practice and is never rolled back.
	require.Equal(t, decay, hist.Decay[catalog.CategoryHealth])
}

func TestToggleCompletion_AMCCBounds(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	seedToday(store,
		challenge.Challenge{ID: "max", Category: catalog.CategoryHealth, ResistanceLevel: 10},
		challenge.Challenge{ID: "min", Category: catalog.CategorySocial, ResistanceLevel: 1},
	)

	_, err := svc.ToggleCompletion(ctx, "max")
	require.NoError(t, err)
	require.Equal(t, 100, store.hist.AMCCStrength)

	_, err = svc.ToggleCompletion(ctx, "min")
	require.NoError(t, err)
	// (10 + 1) / 2 on the 10-point scale, rounded: 55.
	require.Equal(t, 55, store.hist.AMCCStrength)
	require.GreaterOrEqual(t, store.hist.AMCCStrength, 0)
	require.LessOrEqual(t, store.hist.AMCCStrength, 100)
}

func TestToggleCompletion_DecayFloor(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	seedToday(store, challenge.Challenge{ID: "c1", Category: catalog.CategoryDigital, ResistanceLevel: 4})
	store.hist.Decay[catalog.CategoryDigital] = challenge.DecayEntry{
		Original: 4, Completions: 3, Current: 3.0,
	}

	_, err := svc.ToggleCompletion(ctx, "c1")
	require.NoError(t, err)

	entry := store.hist.Decay[catalog.CategoryDigital]
	require.Equal(t, 4, entry.Original)
	require.Equal(t, 4, entry.Completions)
	// 4 - 0.5*4 = 2 would undershoot the floor.
	require.Equal(t, challenge.DecayFloor, entry.Current)
}

func TestToggleCompletion_OriginalPinnedAtFirstCompletion(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	seedToday(store,
		challenge.Challenge{ID: "first", Category: catalog.CategoryCreative, ResistanceLevel: 9},
		challenge.Challenge{ID: "second", Category: catalog.CategoryCreative, ResistanceLevel: 6},
	)

	_, err := svc.ToggleCompletion(ctx, "first")
	require.NoError(t, err)
	_, err = svc.ToggleCompletion(ctx, "second")
	require.NoError(t, err)

	entry := store.hist.Decay[catalog.CategoryCreative]
	// The later, easier completion does not re-anchor the original.
	require.Equal(t, 9, entry.Original)
	require.Equal(t, 2, entry.Completions)
	require.Equal(t, 8.0, entry.Current)
}
