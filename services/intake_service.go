package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"
	"github.com/FranciscoACLima/nutricao-web-app/observability"
)

// DailyTotal sums the tracked macros across all meals of one day.
type DailyTotal struct {
	Calories     float64 `json:"calories"`
	ProteinGrams float64 `json:"protein_grams"`
	CarbGrams    float64 `json:"carb_grams"`
	FatGrams     float64 `json:"fat_grams"`
}

// DailySummary is one point of a period series.
type DailySummary struct {
	Date   string     `json:"date"`
	Totals DailyTotal `json:"totals"`
}

// GoalComparison is actual minus goal for each macro; negative means under.
type GoalComparison struct {
	CaloriesVsGoal float64 `json:"calories_vs_goal"`
	ProteinVsGoal  float64 `json:"protein_vs_goal"`
	CarbVsGoal     float64 `json:"carb_vs_goal"`
	FatVsGoal      float64 `json:"fat_vs_goal"`
}

// MacroShare carries the day's raw gram quantities for proportional charts.
// All-zero is a valid value; how to render an empty breakdown is the
// renderer's concern.
type MacroShare struct {
	ProteinGrams float64 `json:"protein_grams"`
	CarbGrams    float64 `json:"carb_grams"`
	FatGrams     float64 `json:"fat_grams"`
}

// DailyTotals sums each macro across the given meals. Order-independent;
// an empty input yields all-zero totals, never an error.
func DailyTotals(meals []models.MealEntry) DailyTotal {
	var t DailyTotal
	for _, m := range meals {
		t.Calories += m.Calories
		t.ProteinGrams += m.ProteinGrams
		t.CarbGrams += m.CarbGrams
		t.FatGrams += m.FatGrams
	}
	return t
}

// PeriodSeries groups meals on or after startDate by calendar day and
// returns per-day totals in strictly ascending date order. Days with no
// meals produce no row.
func PeriodSeries(meals []models.MealEntry, startDate time.Time) []DailySummary {
	start := dayStart(startDate)
	byDay := map[string][]models.MealEntry{}
	for _, m := range meals {
		d := dayStart(m.Date)
		if d.Before(start) {
			continue
		}
		key := d.Format("2006-01-02")
		byDay[key] = append(byDay[key], m)
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DailySummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, DailySummary{Date: k, Totals: DailyTotals(byDay[k])})
	}
	return out
}

// CompareToGoal computes the signed deviation of a day's totals from the
// resolved goal.
func CompareToGoal(t DailyTotal, g Goal) GoalComparison {
	return GoalComparison{
		CaloriesVsGoal: t.Calories - g.DailyCalories,
		ProteinVsGoal:  t.ProteinGrams - g.DailyProteinGrams,
		CarbVsGoal:     t.CarbGrams - g.DailyCarbGrams,
		FatVsGoal:      t.FatGrams - g.DailyFatGrams,
	}
}

// MacroBreakdown extracts the macro-share triple from a day's totals.
func MacroBreakdown(t DailyTotal) MacroShare {
	return MacroShare{
		ProteinGrams: t.ProteinGrams,
		CarbGrams:    t.CarbGrams,
		FatGrams:     t.FatGrams,
	}
}

// MealStore is the storage collaborator for meal entries.
type MealStore interface {
	Insert(entry *models.MealEntry) error
	ByDate(date time.Time) ([]models.MealEntry, error)
	FromDate(start time.Time) ([]models.MealEntry, error)
	CountForDate(date time.Time) (int64, error)
	All() ([]models.MealEntry, error)
}

type MealService struct {
	store MealStore
}

func NewMealService(store MealStore) *MealService {
	return &MealService{store: store}
}

// AddMeal validates and persists one meal entry. The date is truncated to
// its calendar day; quantities must be non-negative and the slot one of the
// fixed enumeration.
func (s *MealService) AddMeal(date time.Time, slot, foodName string, quantityGrams, calories, protein, carb, fat float64) (*models.MealEntry, error) {
	if !models.ValidMealSlot(slot) {
		return nil, fmt.Errorf("%w: unknown meal slot %q", ErrInvalidMeal, slot)
	}
	if quantityGrams < 0 || calories < 0 || protein < 0 || carb < 0 || fat < 0 {
		return nil, fmt.Errorf("%w: quantities must not be negative", ErrInvalidMeal)
	}

	entry := &models.MealEntry{
		Date:          dayStart(date),
		MealSlot:      slot,
		FoodName:      foodName,
		QuantityGrams: quantityGrams,
		Calories:      calories,
		ProteinGrams:  protein,
		CarbGrams:     carb,
		FatGrams:      fat,
	}
	if err := s.store.Insert(entry); err != nil {
		return nil, err
	}
	observability.MealRecorded()
	return entry, nil
}

func (s *MealService) MealsForDate(date time.Time) ([]models.MealEntry, error) {
	return s.store.ByDate(dayStart(date))
}

// TotalsForDate sums the macros of one day from storage.
func (s *MealService) TotalsForDate(date time.Time) (DailyTotal, error) {
	meals, err := s.MealsForDate(date)
	if err != nil {
		return DailyTotal{}, err
	}
	return DailyTotals(meals), nil
}

// SeriesSince builds the period series for meals dated startDate or later.
func (s *MealService) SeriesSince(startDate time.Time) ([]DailySummary, error) {
	meals, err := s.store.FromDate(dayStart(startDate))
	if err != nil {
		return nil, err
	}
	return PeriodSeries(meals, startDate), nil
}

// HasEntriesForDate reports whether any meal was logged on the given day.
func (s *MealService) HasEntriesForDate(date time.Time) (bool, error) {
	n, err := s.store.CountForDate(dayStart(date))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// dayStart pins a calendar day to UTC midnight so day equality never
// depends on the location the instant was built in.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
