// Package mocks provides testify mocks for the engine store interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
)

// ProfileStore mocks profile.Store.
type ProfileStore struct {
	mock.Mock
}

func (m *ProfileStore) Load(ctx context.Context) (*profile.ResistanceProfile, error) {
	args := m.Called(ctx)
	var prof *profile.ResistanceProfile
	if v := args.Get(0); v != nil {
		prof = v.(*profile.ResistanceProfile)
	}
	return prof, args.Error(1)
}

func (m *ProfileStore) Save(ctx context.Context, p *profile.ResistanceProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// HistoryStore mocks challenge.HistoryStore.
type HistoryStore struct {
	mock.Mock
}

func (m *HistoryStore) Load(ctx context.Context) (*challenge.History, error) {
	args := m.Called(ctx)
	var hist *challenge.History
	if v := args.Get(0); v != nil {
		hist = v.(*challenge.History)
	}
	return hist, args.Error(1)
}

func (m *HistoryStore) Save(ctx context.Context, h *challenge.History) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
