package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
	goals *services.GoalService
}

func NewMealController(meals *services.MealService, goals *services.GoalService) *MealController {
	return &MealController{meals: meals, goals: goals}
}

type mealRequest struct {
	Date          string  `json:"date" binding:"required"` // YYYY-MM-DD
	MealSlot      string  `json:"meal_slot" binding:"required"`
	FoodName      string  `json:"food_name" binding:"required"`
	QuantityGrams float64 `json:"quantity_grams"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	CarbGrams     float64 `json:"carb_grams"`
	FatGrams      float64 `json:"fat_grams"`
}

func (ct *MealController) Create(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := ct.meals.AddMeal(date, req.MealSlot, req.FoodName,
		req.QuantityGrams, req.Calories, req.ProteinGrams, req.CarbGrams, req.FatGrams)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMeal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListByDate returns the raw entries of one day, today when no date given.
func (ct *MealController) ListByDate(c *gin.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}
	meals, err := ct.meals.MealsForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"meals": meals,
	})
}

// DaySummary returns one day's totals with goal comparison and macro share.
func (ct *MealController) DaySummary(c *gin.Context) {
	date, ok := dateQuery(c)
	if !ok {
		return
	}
	totals, err := ct.meals.TotalsForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	hasEntries, err := ct.meals.HasEntriesForDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	goal, err := ct.goals.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":        date.Format("2006-01-02"),
		"has_entries": hasEntries,
		"totals":      totals,
		"goal":        goal,
		"comparison":  services.CompareToGoal(totals, goal),
		"macro_share": services.MacroBreakdown(totals),
	})
}

// Series returns per-day totals for the last N days (default 7).
func (ct *MealController) Series(c *gin.Context) {
	days := intQuery(c, "days", 7)
	if days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be at least 1"})
		return
	}
	start := time.Now().UTC().AddDate(0, 0, -(days - 1))
	series, err := ct.meals.SeriesSince(start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"start":  start.Format("2006-01-02"),
		"series": series,
	})
}
