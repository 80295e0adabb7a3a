package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpalmer/grit/internal/catalog"
	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
	"github.com/rpalmer/grit/internal/repository"
)

// staticProfiles serves a fixed profile, standing in for the profile store.
type staticProfiles struct {
	prof *profile.ResistanceProfile
	err  error
}

func (s *staticProfiles) Load(ctx context.Context) (*profile.ResistanceProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prof, nil
}

// memHistoryStore keeps the last saved history in memory.
type memHistoryStore struct {
	hist  *challenge.History
	saves int
}

func (s *memHistoryStore) Load(ctx context.Context) (*challenge.History, error) {
	if s.hist == nil {
		return nil, repository.ErrNotFound
	}
	return s.hist, nil
}

func (s *memHistoryStore) Save(ctx context.Context, h *challenge.History) error {
	s.hist = h
	s.saves++
	return nil
}

func completedProfile(ratings ...profile.ActivityRating) *profile.ResistanceProfile {
	return &profile.ResistanceProfile{
		Completed:  true,
		Activities: ratings,
	}
}

func poolRating(cat catalog.Category, title string, resistance, minutes int, avoidance profile.AvoidanceFrequency) profile.ActivityRating {
	return profile.ActivityRating{
		Category:      cat,
		Title:         title,
		Description:   "desc",
		EstimatedTime: minutes,
		Resistance:    resistance,
		Avoidance:     avoidance,
	}
}

func newService(prof *profile.ResistanceProfile) (*challenge.Service, *memHistoryStore) {
	store := &memHistoryStore{}
	return challenge.NewService(&staticProfiles{prof: prof}, store, nil), store
}

func TestGenerateDaily_RequiresCompletedProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(&profile.ResistanceProfile{Completed: false})

	_, err := svc.GenerateDaily(ctx, time.Now())
	require.ErrorIs(t, err, challenge.ErrProfileIncomplete)

	// A missing profile counts as incomplete, not as a storage fault.
	svcMissing := challenge.NewService(&staticProfiles{err: repository.ErrNotFound}, &memHistoryStore{}, nil)
	_, err = svcMissing.GenerateDaily(ctx, time.Now())
	require.ErrorIs(t, err, challenge.ErrProfileIncomplete)
}

func TestGenerateDaily_CategoryDiversity(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "health-easy", 7, 30, profile.AvoidOften),
		poolRating(catalog.CategoryHealth, "health-hard", 9, 30, profile.AvoidOften),
		poolRating(catalog.CategoryDigital, "digital", 8, 45, profile.AvoidAlways),
		poolRating(catalog.CategorySocial, "social", 7, 15, profile.AvoidOften),
	)
	svc, store := newService(prof)

	date := time.Now()
	challenges, err := svc.GenerateDaily(ctx, date)
	require.NoError(t, err)
	require.Len(t, challenges, 3)

	// One challenge per category, categories in catalog order, and the
	// strongest rating wins within a category.
	require.Equal(t, catalog.CategorySocial, challenges[0].Category)
	require.Equal(t, catalog.CategoryDigital, challenges[1].Category)
	require.Equal(t, catalog.CategoryHealth, challenges[2].Category)
	require.Equal(t, "health-hard", challenges[2].Title)
	require.Equal(t, 9, challenges[2].ResistanceLevel)

	for _, ch := range challenges {
		require.NotEmpty(t, ch.ID)
		require.NotEmpty(t, ch.Rationale)
		require.Equal(t, challenge.PersonalizedHighResistance, ch.PersonalizedFor)
		require.False(t, ch.Completed)
		require.Nil(t, ch.CompletedAt)
	}

	require.Equal(t, challenges, store.hist.Daily[challenge.DateKey(date)])
}

func TestGenerateDaily_FillsWhenFewCategories(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "h1", 7, 30, profile.AvoidOften),
		poolRating(catalog.CategoryHealth, "h2", 9, 30, profile.AvoidOften),
		poolRating(catalog.CategoryHealth, "h3", 8, 30, profile.AvoidAlways),
	)
	svc, _ := newService(prof)

	challenges, err := svc.GenerateDaily(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, challenges, 3)

	// Category best first, then remaining pool by descending resistance.
	require.Equal(t, "h2", challenges[0].Title)
	require.Equal(t, "h3", challenges[1].Title)
	require.Equal(t, "h1", challenges[2].Title)
}

func TestGenerateDaily_CapsAtThreeDistinctCategories(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryOrganization, "o", 6, 20, profile.AvoidOften),
		poolRating(catalog.CategorySocial, "s", 7, 20, profile.AvoidOften),
		poolRating(catalog.CategoryHealth, "h", 8, 20, profile.AvoidOften),
		poolRating(catalog.CategoryLearning, "l", 9, 20, profile.AvoidOften),
	)
	svc, _ := newService(prof)

	challenges, err := svc.GenerateDaily(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, challenges, challenge.MaxDaily)

	seen := map[catalog.Category]bool{}
	for _, ch := range challenges {
		require.False(t, seen[ch.Category], "repeated category %s", ch.Category)
		seen[ch.Category] = true
	}
}

func TestGenerateDaily_RegenerationReplaces(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "h", 8, 30, profile.AvoidOften),
		poolRating(catalog.CategorySocial, "s", 7, 15, profile.AvoidAlways),
	)
	svc, store := newService(prof)

	date := time.Now()
	first, err := svc.GenerateDaily(ctx, date)
	require.NoError(t, err)

	second, err := svc.GenerateDaily(ctx, date)
	require.NoError(t, err)

	key := challenge.DateKey(date)
	require.Equal(t, second, store.hist.Daily[key])
	require.Len(t, store.hist.Daily[key], 2)
	require.NotEqual(t, first[0].ID, second[0].ID)
}

func TestGenerateDaily_EmptyPool(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "strong-but-faced", 9, 30, profile.AvoidSometimes),
		poolRating(catalog.CategorySocial, "avoided-but-easy", 5, 15, profile.AvoidAlways),
	)
	svc, store := newService(prof)

	date := time.Now()
	challenges, err := svc.GenerateDaily(ctx, date)
	require.NoError(t, err)
	require.Empty(t, challenges)
	require.Empty(t, store.hist.Daily[challenge.DateKey(date)])
}

func TestGenerateContextual_TimeAndEnergyExclusions(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "long-hard", 9, 45, profile.AvoidAlways),
	)
	svc, _ := newService(prof)

	// Exceeds the time budget, and resistance 9 is excluded on low
	// energy regardless.
	suggestions, err := svc.GenerateContextual(ctx, challenge.EnergyLow, 20, "home")
	require.NoError(t, err)
	require.Empty(t, suggestions)
}

func TestGenerateContextual_EnergyRules(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryHealth, "moderate", 6, 20, profile.AvoidOften),
		poolRating(catalog.CategorySocial, "brutal", 9, 20, profile.AvoidOften),
	)
	svc, _ := newService(prof)

	low, err := svc.GenerateContextual(ctx, challenge.EnergyLow, 30, "home")
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "moderate", low[0].Title)

	medium, err := svc.GenerateContextual(ctx, challenge.EnergyMedium, 30, "home")
	require.NoError(t, err)
	require.Len(t, medium, 2)
	// Sorted by descending resistance.
	require.Equal(t, "brutal", medium[0].Title)
	require.Equal(t, "moderate", medium[1].Title)

	high, err := svc.GenerateContextual(ctx, challenge.EnergyHigh, 30, "home")
	require.NoError(t, err)
	require.Len(t, high, 2)
}

func TestGenerateContextual_OfficeRestrictsCategories(t *testing.T) {
	ctx := context.Background()
	prof := completedProfile(
		poolRating(catalog.CategoryAdministrative, "paperwork", 7, 20, profile.AvoidOften),
		poolRating(catalog.CategoryHealth, "workout", 8, 20, profile.AvoidOften),
	)
	svc, _ := newService(prof)

	suggestions, err := svc.GenerateContextual(ctx, challenge.EnergyMedium, 30, "office")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	require.Equal(t, "paperwork", suggestions[0].Title)

	home, err := svc.GenerateContextual(ctx, challenge.EnergyMedium, 30, "home")
	require.NoError(t, err)
	require.Len(t, home, 2)
}

func TestGenerateContextual_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(completedProfile())

	_, err := svc.GenerateContextual(ctx, challenge.EnergyLevel("exhausted"), 30, "home")
	require.ErrorIs(t, err, challenge.ErrInvalidInput)

	_, err = svc.GenerateContextual(ctx, challenge.EnergyLow, 0, "home")
	require.ErrorIs(t, err, challenge.ErrInvalidInput)
}

func TestAdaptDifficulty_NoImprovement(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	store.hist = challenge.NewHistory()
	store.hist.Decay[catalog.CategoryHealth] = challenge.DecayEntry{
		Original: 8, Completions: 2, Current: 7.0,
	}

	adapted, err := svc.AdaptDifficulty(ctx)
	require.NoError(t, err)
	require.Empty(t, adapted)
	// No-op adaptation writes nothing.
	require.Zero(t, store.saves)
}

func TestAdaptDifficulty_EscalatesImprovedCategory(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	store.hist = challenge.NewHistory()
	existing := challenge.Challenge{ID: "seed", Category: catalog.CategorySocial}
	today := challenge.DateKey(time.Now())
	store.hist.Daily[today] = []challenge.Challenge{existing}
	store.hist.Decay[catalog.CategoryHealth] = challenge.DecayEntry{
		Original: 9, Completions: 5, Current: 6.5,
	}

	adapted, err := svc.AdaptDifficulty(ctx)
	require.NoError(t, err)
	require.Len(t, adapted, 1)

	ch := adapted[0]
	require.Equal(t, catalog.CategoryHealth, ch.Category)
	require.Equal(t, challenge.PersonalizedAdapted, ch.PersonalizedFor)
	require.Equal(t, 10, ch.ResistanceLevel)
	// The longest over-30-minute Health activity.
	require.Equal(t, "Go to bed an hour early", ch.Title)
	require.Greater(t, ch.EstimatedTime, challenge.AdaptMinMinutes)

	// Appends to today's list rather than replacing it.
	list := store.hist.Daily[today]
	require.Len(t, list, 2)
	require.Equal(t, existing, list[0])
	require.Equal(t, ch, list[1])
}

func TestAdaptDifficulty_LevelCappedAtTen(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(completedProfile())
	store.hist = challenge.NewHistory()
	store.hist.Decay[catalog.CategoryLearning] = challenge.DecayEntry{
		Original: 7, Completions: 8, Current: 3.0,
	}

	adapted, err := svc.AdaptDifficulty(ctx)
	require.NoError(t, err)
	require.Len(t, adapted, 1)
	require.Equal(t, 8, adapted[0].ResistanceLevel)
}
