package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/services"
	"github.com/FranciscoACLima/nutricao-web-app/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	meals        *services.MealService
	measurements *services.MeasurementService
	goals        *services.GoalService
}

func NewDashboardController(meals *services.MealService, measurements *services.MeasurementService, goals *services.GoalService) *DashboardController {
	return &DashboardController{meals: meals, measurements: measurements, goals: goals}
}

type dashboardResponse struct {
	Date         string                     `json:"date"`
	HasEntries   bool                       `json:"has_entries"`
	Goal         services.Goal              `json:"goal"`
	TodayTotals  services.DailyTotal        `json:"today_totals"`
	Comparison   services.GoalComparison    `json:"comparison"`
	MacroShare   services.MacroShare        `json:"macro_share"`
	IntakeSeries []services.DailySummary    `json:"intake_series"`
	BodySeries   services.MeasurementSeries `json:"body_series"`
	Progress     *services.ProgressDelta    `json:"progress,omitempty"`
	LatestBMI    *bmiSnapshot               `json:"latest_bmi,omitempty"`
}

type bmiSnapshot struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// Overview assembles the dashboard payload: today's intake against the
// goal, the intake series for the selected window and the full body series.
func (ct *DashboardController) Overview(c *gin.Context) {
	days := intQuery(c, "days", 7)
	if days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be at least 1"})
		return
	}

	today := time.Now().UTC()
	goal, err := ct.goals.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totals, err := ct.meals.TotalsForDate(today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	hasEntries, err := ct.meals.HasEntriesForDate(today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	intake, err := ct.meals.SeriesSince(today.AddDate(0, 0, -(days - 1)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	body, err := ct.measurements.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dashboardResponse{
		Date:         today.Format("2006-01-02"),
		HasEntries:   hasEntries,
		Goal:         goal,
		TodayTotals:  totals,
		Comparison:   services.CompareToGoal(totals, goal),
		MacroShare:   services.MacroBreakdown(totals),
		IntakeSeries: intake,
		BodySeries:   services.BuildMeasurementSeries(body),
	}

	// Progress and BMI appear once there is enough data to derive them.
	if delta, err := services.ComputeProgress(body); err == nil {
		resp.Progress = &delta
	} else if !errors.Is(err, services.ErrInsufficientData) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(body) > 0 {
		latest := body[len(body)-1]
		resp.LatestBMI = &bmiSnapshot{
			Value:    latest.BodyMassIndex,
			Category: utils.BMICategory(latest.BodyMassIndex),
		}
	}

	c.JSON(http.StatusOK, resp)
}
