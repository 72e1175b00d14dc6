package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/services"
	"github.com/FranciscoACLima/nutricao-web-app/utils"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	measurements *services.MeasurementService
}

func NewMeasurementController(measurements *services.MeasurementService) *MeasurementController {
	return &MeasurementController{measurements: measurements}
}

type measurementRequest struct {
	Date           string  `json:"date" binding:"required"` // YYYY-MM-DD
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	WaistCm        float64 `json:"waist_cm"`
	HipCm          float64 `json:"hip_cm"`
	BodyFatPercent float64 `json:"body_fat_percent"`
}

func (ct *MeasurementController) Create(c *gin.Context) {
	var req measurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	m, err := ct.measurements.Record(date, req.WeightKg, req.HeightCm, req.WaistCm, req.HipCm, req.BodyFatPercent)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMeasurement) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"measurement":  m,
		"bmi_category": utils.BMICategory(m.BodyMassIndex),
	})
}

func (ct *MeasurementController) List(c *gin.Context) {
	series, err := ct.measurements.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"measurements": series,
		"series":       services.BuildMeasurementSeries(series),
	})
}

// Progress returns the delta between the oldest and newest measurements;
// 422 when fewer than two exist.
func (ct *MeasurementController) Progress(c *gin.Context) {
	delta, err := ct.measurements.Progress()
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, delta)
}
