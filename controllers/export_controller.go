package controllers

import (
	"net/http"

	"github.com/FranciscoACLima/nutricao-web-app/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	meals        services.MealStore
	measurements services.MeasurementStore
}

func NewExportController(meals services.MealStore, measurements services.MeasurementStore) *ExportController {
	return &ExportController{meals: meals, measurements: measurements}
}

func (ct *ExportController) Meals(c *gin.Context) {
	meals, err := ct.meals.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := services.MealsCSV(meals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="refeicoes.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (ct *ExportController) Measurements(c *gin.Context) {
	series, err := ct.measurements.AllByDate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := services.MeasurementsCSV(series)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="medidas.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
