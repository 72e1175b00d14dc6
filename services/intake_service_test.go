package services

import (
	"testing"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMealStore struct {
	entries []models.MealEntry
	nextID  uint
}

func (s *mockMealStore) Insert(entry *models.MealEntry) error {
	s.nextID++
	entry.ID = s.nextID
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *mockMealStore) ByDate(date time.Time) ([]models.MealEntry, error) {
	var out []models.MealEntry
	for _, e := range s.entries {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *mockMealStore) FromDate(start time.Time) ([]models.MealEntry, error) {
	var out []models.MealEntry
	for _, e := range s.entries {
		if !e.Date.Before(start) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *mockMealStore) CountForDate(date time.Time) (int64, error) {
	meals, _ := s.ByDate(date)
	return int64(len(meals)), nil
}

func (s *mockMealStore) All() ([]models.MealEntry, error) { return s.entries, nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func meal(date time.Time, cal, protein, carb, fat float64) models.MealEntry {
	return models.MealEntry{Date: date, Calories: cal, ProteinGrams: protein, CarbGrams: carb, FatGrams: fat}
}

func TestDailyTotalsEmpty(t *testing.T) {
	assert.Equal(t, DailyTotal{}, DailyTotals(nil))
	assert.Equal(t, DailyTotal{}, DailyTotals([]models.MealEntry{}))
}

func TestDailyTotalsOrderIndependent(t *testing.T) {
	d := day(2024, 3, 10)
	meals := []models.MealEntry{
		meal(d, 240, 8, 45, 2),
		meal(d, 195, 4, 40, 0),
		meal(d, 330, 40, 0, 10),
	}
	want := DailyTotal{Calories: 765, ProteinGrams: 52, CarbGrams: 85, FatGrams: 12}
	assert.Equal(t, want, DailyTotals(meals))

	reversed := []models.MealEntry{meals[2], meals[1], meals[0]}
	assert.Equal(t, want, DailyTotals(reversed))
}

func TestPeriodSeriesFiltersAndMerges(t *testing.T) {
	series := PeriodSeries([]models.MealEntry{
		meal(day(2024, 3, 8), 100, 1, 1, 1), // before the window
		meal(day(2024, 3, 12), 300, 20, 30, 5),
		meal(day(2024, 3, 10), 240, 8, 45, 2),
		meal(day(2024, 3, 10), 195, 4, 40, 0), // same day, merged
	}, day(2024, 3, 10))

	require.Len(t, series, 2)
	assert.Equal(t, "2024-03-10", series[0].Date)
	assert.Equal(t, DailyTotal{Calories: 435, ProteinGrams: 12, CarbGrams: 85, FatGrams: 2}, series[0].Totals)
	assert.Equal(t, "2024-03-12", series[1].Date)

	// no synthesized rows for gap days
	for _, s := range series {
		assert.NotEqual(t, "2024-03-11", s.Date)
	}
}

func TestPeriodSeriesStrictlyAscending(t *testing.T) {
	series := PeriodSeries([]models.MealEntry{
		meal(day(2024, 3, 14), 1, 0, 0, 0),
		meal(day(2024, 3, 11), 1, 0, 0, 0),
		meal(day(2024, 3, 13), 1, 0, 0, 0),
		meal(day(2024, 3, 11), 1, 0, 0, 0),
	}, day(2024, 3, 1))

	require.Len(t, series, 3)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestPeriodSeriesEmpty(t *testing.T) {
	assert.Empty(t, PeriodSeries(nil, day(2024, 3, 1)))
}

func TestCompareToGoalSigned(t *testing.T) {
	goal := Goal{DailyCalories: 2000, DailyProteinGrams: 150, DailyCarbGrams: 225, DailyFatGrams: 65}
	cmp := CompareToGoal(DailyTotal{Calories: 1800, ProteinGrams: 160, CarbGrams: 225, FatGrams: 40}, goal)
	assert.Equal(t, -200.0, cmp.CaloriesVsGoal)
	assert.Equal(t, 10.0, cmp.ProteinVsGoal)
	assert.Equal(t, 0.0, cmp.CarbVsGoal)
	assert.Equal(t, -25.0, cmp.FatVsGoal)
}

func TestMacroBreakdownAllZero(t *testing.T) {
	assert.Equal(t, MacroShare{}, MacroBreakdown(DailyTotal{}))
}

func TestAddMealValidation(t *testing.T) {
	svc := NewMealService(&mockMealStore{})

	_, err := svc.AddMeal(day(2024, 3, 10), "brunch", "Arroz", 100, 128, 2.5, 28.1, 0.2)
	assert.ErrorIs(t, err, ErrInvalidMeal)

	_, err = svc.AddMeal(day(2024, 3, 10), models.SlotLunch, "Arroz", -1, 128, 2.5, 28.1, 0.2)
	assert.ErrorIs(t, err, ErrInvalidMeal)

	entry, err := svc.AddMeal(day(2024, 3, 10), models.SlotLunch, "Arroz", 100, 128, 2.5, 28.1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), entry.ID)
	assert.Equal(t, "Arroz", entry.FoodName)
}

func TestAddMealTruncatesDate(t *testing.T) {
	store := &mockMealStore{}
	svc := NewMealService(store)

	noon := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	_, err := svc.AddMeal(noon, models.SlotLunch, "Arroz", 100, 128, 2.5, 28.1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 10), store.entries[0].Date)
}

func TestHasEntriesForDate(t *testing.T) {
	svc := NewMealService(&mockMealStore{})
	_, err := svc.AddMeal(day(2024, 3, 10), models.SlotDinner, "Sopa", 300, 200, 15, 25, 4)
	require.NoError(t, err)

	has, err := svc.HasEntriesForDate(day(2024, 3, 10))
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasEntriesForDate(day(2024, 3, 11))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestDayEqualityAcrossLocations(t *testing.T) {
	store := &mockMealStore{}
	svc := NewMealService(store)

	// date parsed from a request, UTC midnight
	logged, err := time.Parse("2006-01-02", "2026-08-28")
	require.NoError(t, err)
	_, err = svc.AddMeal(logged, models.SlotLunch, "Arroz", 100, 128, 2.5, 28.1, 0.2)
	require.NoError(t, err)

	// same calendar day queried as a local-time instant
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	localNoon := time.Date(2026, 8, 28, 12, 0, 0, 0, saoPaulo)

	meals, err := svc.MealsForDate(localNoon)
	require.NoError(t, err)
	assert.Len(t, meals, 1)

	has, err := svc.HasEntriesForDate(localNoon)
	require.NoError(t, err)
	assert.True(t, has)

	totals, err := svc.TotalsForDate(localNoon)
	require.NoError(t, err)
	assert.Equal(t, 128.0, totals.Calories)
}
