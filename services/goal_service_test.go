package services

import (
	"testing"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGoalStore struct {
	profile *models.GoalProfile
	upserts int
}

func (s *mockGoalStore) Singleton() (*models.GoalProfile, error) { return s.profile, nil }

func (s *mockGoalStore) Upsert(p *models.GoalProfile) error {
	p.ID = 1
	s.profile = p
	s.upserts++
	return nil
}

func f(v float64) *float64 { return &v }

func TestResolveGoalAbsentRow(t *testing.T) {
	g := ResolveGoal(nil)
	assert.Equal(t, Goal{
		DailyCalories:        2000.0,
		DailyProteinGrams:    150.0,
		DailyCarbGrams:       225.0,
		DailyFatGrams:        65.0,
		TargetWeightKg:       70.0,
		TargetBodyFatPercent: 15.0,
	}, g)
}

func TestResolveGoalPartialRow(t *testing.T) {
	g := ResolveGoal(&models.GoalProfile{
		ID:            1,
		DailyCalories: f(1800),
		DailyFatGrams: f(50),
	})
	assert.Equal(t, 1800.0, g.DailyCalories)
	assert.Equal(t, 50.0, g.DailyFatGrams)
	// absent fields resolve to the defaults
	assert.Equal(t, 150.0, g.DailyProteinGrams)
	assert.Equal(t, 225.0, g.DailyCarbGrams)
	assert.Equal(t, 70.0, g.TargetWeightKg)
	assert.Equal(t, 15.0, g.TargetBodyFatPercent)
}

func TestResolveGoalFullRowPassesThrough(t *testing.T) {
	g := ResolveGoal(&models.GoalProfile{
		ID:                   1,
		DailyCalories:        f(2500),
		DailyProteinGrams:    f(180),
		DailyCarbGrams:       f(300),
		DailyFatGrams:        f(80),
		TargetWeightKg:       f(82),
		TargetBodyFatPercent: f(12),
	})
	assert.Equal(t, Goal{2500, 180, 300, 80, 82, 12}, g)
}

func TestGoalServiceCurrentDefaultsWhenAbsent(t *testing.T) {
	svc := NewGoalService(&mockGoalStore{})
	g, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, ResolveGoal(nil), g)
}

func TestGoalServiceUpdateThenCurrent(t *testing.T) {
	store := &mockGoalStore{}
	svc := NewGoalService(store)

	require.NoError(t, svc.Update(Goal{1900, 140, 200, 60, 68, 14}))
	g, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, Goal{1900, 140, 200, 60, 68, 14}, g)
	assert.Equal(t, uint(1), store.profile.ID)
}

func TestGoalServiceEnsureSeeded(t *testing.T) {
	store := &mockGoalStore{}
	svc := NewGoalService(store)

	require.NoError(t, svc.EnsureSeeded())
	assert.Equal(t, 1, store.upserts)
	require.NotNil(t, store.profile)
	assert.Equal(t, 2000.0, *store.profile.DailyCalories)

	// already seeded: second call does not rewrite the row
	require.NoError(t, svc.EnsureSeeded())
	assert.Equal(t, 1, store.upserts)
}
