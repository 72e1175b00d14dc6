package models

import "time"

// BodyMeasurement is one body check-in. BodyMassIndex is computed once at
// creation time from weight and height; height is kept on the record so the
// value can be re-derived after a correction.
type BodyMeasurement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	WeightKg       float64   `json:"weight_kg"`
	HeightCm       float64   `json:"height_cm"`
	BodyMassIndex  float64   `json:"body_mass_index"`
	WaistCm        float64   `json:"waist_cm"`
	HipCm          float64   `json:"hip_cm"`
	BodyFatPercent float64   `json:"body_fat_percent"`
	CreatedAt      time.Time `json:"created_at"`
}
