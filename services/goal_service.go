package services

import (
	"github.com/FranciscoACLima/nutricao-web-app/models"
)

// Defaults applied for any target missing from the stored goal row.
const (
	DefaultDailyCalories     = 2000.0
	DefaultDailyProteinGrams = 150.0
	DefaultDailyCarbGrams    = 225.0
	DefaultDailyFatGrams     = 65.0
	DefaultTargetWeightKg    = 70.0
	DefaultTargetBodyFatPct  = 15.0
)

// Goal is a fully resolved goal profile: every field carries a concrete value.
type Goal struct {
	DailyCalories        float64 `json:"daily_calories"`
	DailyProteinGrams    float64 `json:"daily_protein_grams"`
	DailyCarbGrams       float64 `json:"daily_carb_grams"`
	DailyFatGrams        float64 `json:"daily_fat_grams"`
	TargetWeightKg       float64 `json:"target_weight_kg"`
	TargetBodyFatPercent float64 `json:"target_body_fat_percent"`
}

// GoalStore is the storage collaborator for the singleton goal row.
type GoalStore interface {
	// Singleton returns the goal row, or nil when none exists yet.
	Singleton() (*models.GoalProfile, error)
	Upsert(profile *models.GoalProfile) error
}

// ResolveGoal fills the gaps in a stored profile with the documented
// defaults. Resolution is total: a nil profile resolves to all defaults,
// present fields pass through unchanged.
func ResolveGoal(raw *models.GoalProfile) Goal {
	g := Goal{
		DailyCalories:        DefaultDailyCalories,
		DailyProteinGrams:    DefaultDailyProteinGrams,
		DailyCarbGrams:       DefaultDailyCarbGrams,
		DailyFatGrams:        DefaultDailyFatGrams,
		TargetWeightKg:       DefaultTargetWeightKg,
		TargetBodyFatPercent: DefaultTargetBodyFatPct,
	}
	if raw == nil {
		return g
	}
	if raw.DailyCalories != nil {
		g.DailyCalories = *raw.DailyCalories
	}
	if raw.DailyProteinGrams != nil {
		g.DailyProteinGrams = *raw.DailyProteinGrams
	}
	if raw.DailyCarbGrams != nil {
		g.DailyCarbGrams = *raw.DailyCarbGrams
	}
	if raw.DailyFatGrams != nil {
		g.DailyFatGrams = *raw.DailyFatGrams
	}
	if raw.TargetWeightKg != nil {
		g.TargetWeightKg = *raw.TargetWeightKg
	}
	if raw.TargetBodyFatPercent != nil {
		g.TargetBodyFatPercent = *raw.TargetBodyFatPercent
	}
	return g
}

type GoalService struct {
	store GoalStore
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// Current reads the singleton row and resolves it. An absent row is not an
// error; it resolves to the defaults.
func (s *GoalService) Current() (Goal, error) {
	raw, err := s.store.Singleton()
	if err != nil {
		return Goal{}, err
	}
	return ResolveGoal(raw), nil
}

// Update writes the full goal set to the singleton row.
func (s *GoalService) Update(g Goal) error {
	return s.store.Upsert(&models.GoalProfile{
		ID:                   1,
		DailyCalories:        &g.DailyCalories,
		DailyProteinGrams:    &g.DailyProteinGrams,
		DailyCarbGrams:       &g.DailyCarbGrams,
		DailyFatGrams:        &g.DailyFatGrams,
		TargetWeightKg:       &g.TargetWeightKg,
		TargetBodyFatPercent: &g.TargetBodyFatPercent,
	})
}

// EnsureSeeded writes the default row when none exists, so the absent
// branch of the resolver is rarely hit in practice.
func (s *GoalService) EnsureSeeded() error {
	raw, err := s.store.Singleton()
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}
	return s.Update(ResolveGoal(nil))
}
