package controllers

import (
	"net/http"

	"github.com/FranciscoACLima/nutricao-web-app/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (ct *GoalController) Get(c *gin.Context) {
	goal, err := ct.goals.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Update accepts a partial set of targets; fields left out keep their
// current resolved value.
func (ct *GoalController) Update(c *gin.Context) {
	var req struct {
		DailyCalories        *float64 `json:"daily_calories"`
		DailyProteinGrams    *float64 `json:"daily_protein_grams"`
		DailyCarbGrams       *float64 `json:"daily_carb_grams"`
		DailyFatGrams        *float64 `json:"daily_fat_grams"`
		TargetWeightKg       *float64 `json:"target_weight_kg"`
		TargetBodyFatPercent *float64 `json:"target_body_fat_percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ct.goals.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.DailyCalories != nil {
		goal.DailyCalories = *req.DailyCalories
	}
	if req.DailyProteinGrams != nil {
		goal.DailyProteinGrams = *req.DailyProteinGrams
	}
	if req.DailyCarbGrams != nil {
		goal.DailyCarbGrams = *req.DailyCarbGrams
	}
	if req.DailyFatGrams != nil {
		goal.DailyFatGrams = *req.DailyFatGrams
	}
	if req.TargetWeightKg != nil {
		goal.TargetWeightKg = *req.TargetWeightKg
	}
	if req.TargetBodyFatPercent != nil {
		goal.TargetBodyFatPercent = *req.TargetBodyFatPercent
	}

	if err := ct.goals.Update(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
