package services

import (
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/logger"
	"github.com/FranciscoACLima/nutricao-web-app/models"

	"go.uber.org/zap"
)

// DemoSeeder fills empty tables with a small sample dataset so a fresh
// install has something to chart. Populated tables are left untouched.
type DemoSeeder struct {
	meals        MealStore
	measurements MeasurementStore
	goals        *GoalService
}

func NewDemoSeeder(meals MealStore, measurements MeasurementStore, goals *GoalService) *DemoSeeder {
	return &DemoSeeder{meals: meals, measurements: measurements, goals: goals}
}

func (s *DemoSeeder) Seed() error {
	if err := s.seedMeals(); err != nil {
		return err
	}
	if err := s.seedMeasurements(); err != nil {
		return err
	}
	return s.goals.EnsureSeeded()
}

func (s *DemoSeeder) seedMeals() error {
	existing, err := s.meals.All()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	type row struct {
		slot     string
		food     string
		qty      float64
		calories float64
		protein  float64
		carb     float64
		fat      float64
	}
	rows := []row{
		{models.SlotBreakfast, "Pão Integral", 100, 240, 8, 45, 2},
		{models.SlotLunch, "Arroz", 150, 195, 4, 40, 0},
		{models.SlotDinner, "Frango", 200, 330, 40, 0, 10},
		{models.SlotAfternoonSnack, "Maçã", 150, 80, 0, 21, 0},
		{models.SlotBreakfast, "Aveia", 80, 300, 12, 54, 5},
		{models.SlotLunch, "Feijão", 100, 120, 7, 22, 0},
		{models.SlotDinner, "Salmão", 180, 280, 25, 0, 15},
		{models.SlotBreakfast, "Tapioca", 120, 220, 3, 30, 7},
		{models.SlotLunch, "Salada", 200, 90, 2, 10, 2},
		{models.SlotDinner, "Sopa", 300, 200, 15, 25, 4},
	}

	today := dayStart(time.Now().UTC())
	for i, r := range rows {
		entry := &models.MealEntry{
			Date:          today.AddDate(0, 0, -i),
			MealSlot:      r.slot,
			FoodName:      r.food,
			QuantityGrams: r.qty,
			Calories:      r.calories,
			ProteinGrams:  r.protein,
			CarbGrams:     r.carb,
			FatGrams:      r.fat,
		}
		if err := s.meals.Insert(entry); err != nil {
			return err
		}
	}
	logger.Info("seeded demo meals", zap.Int("count", len(rows)))
	return nil
}

func (s *DemoSeeder) seedMeasurements() error {
	existing, err := s.measurements.AllByDate()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	type row struct {
		weight  float64
		waist   float64
		hip     float64
		bodyFat float64
	}
	// Oldest first, one check-in every five days, height fixed at 170 cm.
	rows := []row{
		{78.5, 92, 100, 22},
		{78.0, 91, 99, 21.5},
		{77.2, 90, 98, 21},
		{76.8, 89, 98, 20.5},
		{76.0, 88, 97, 20},
		{75.5, 87, 96, 19.5},
	}

	const heightCm = 170.0
	today := dayStart(time.Now().UTC())
	for i, r := range rows {
		bmi := r.weight / ((heightCm / 100) * (heightCm / 100))
		m := &models.BodyMeasurement{
			Date:           today.AddDate(0, 0, -(len(rows)-1-i)*5),
			WeightKg:       r.weight,
			HeightCm:       heightCm,
			BodyMassIndex:  bmi,
			WaistCm:        r.waist,
			HipCm:          r.hip,
			BodyFatPercent: r.bodyFat,
		}
		if err := s.measurements.Insert(m); err != nil {
			return err
		}
	}
	logger.Info("seeded demo measurements", zap.Int("count", len(rows)))
	return nil
}
