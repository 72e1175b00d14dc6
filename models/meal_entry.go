package models

import "time"

// Meal slots, in the order they occur in a day.
const (
	SlotBreakfast      = "breakfast"
	SlotMorningSnack   = "morning-snack"
	SlotLunch          = "lunch"
	SlotAfternoonSnack = "afternoon-snack"
	SlotDinner         = "dinner"
	SlotLateSnack      = "late-snack"
)

var mealSlots = map[string]bool{
	SlotBreakfast:      true,
	SlotMorningSnack:   true,
	SlotLunch:          true,
	SlotAfternoonSnack: true,
	SlotDinner:         true,
	SlotLateSnack:      true,
}

func ValidMealSlot(slot string) bool { return mealSlots[slot] }

// MealEntry is one logged food item. Entries are immutable once created;
// quantities are stored as floats even when entered as whole numbers.
type MealEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Date          time.Time `gorm:"index;not null" json:"date"` // truncated to the calendar day
	MealSlot      string    `gorm:"size:20;not null" json:"meal_slot"`
	FoodName      string    `gorm:"not null" json:"food_name"`
	QuantityGrams float64   `json:"quantity_grams"`
	Calories      float64   `json:"calories"`
	ProteinGrams  float64   `json:"protein_grams"`
	CarbGrams     float64   `json:"carb_grams"`
	FatGrams      float64   `json:"fat_grams"`
	CreatedAt     time.Time `json:"created_at"`
}
