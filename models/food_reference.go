package models

// FoodReference is one row of the TACO food-composition table, bulk-loaded
// once at startup and then queried read-only. Values are per 100 g.
type FoodReference struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"index;not null" json:"name"`
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinGrams float64 `json:"protein_grams"`
	FatGrams     float64 `json:"fat_grams"`
	CarbGrams    float64 `json:"carb_grams"`
	FiberGrams   float64 `json:"fiber_grams"`
	CalciumMg    float64 `json:"calcium_mg"`
	IronMg       float64 `json:"iron_mg"`
}
