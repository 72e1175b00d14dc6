package models

import "time"

// GoalProfile holds the daily nutrient targets and target body metrics.
// Exactly one row ever exists (id = 1). Fields are nullable at the storage
// layer; callers always read them through the resolver, which fills gaps
// with documented defaults.
type GoalProfile struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	DailyCalories        *float64  `json:"daily_calories"`
	DailyProteinGrams    *float64  `json:"daily_protein_grams"`
	DailyCarbGrams       *float64  `json:"daily_carb_grams"`
	DailyFatGrams        *float64  `json:"daily_fat_grams"`
	TargetWeightKg       *float64  `json:"target_weight_kg"`
	TargetBodyFatPercent *float64  `json:"target_body_fat_percent"`
	UpdatedAt            time.Time `json:"updated_at"`
}
