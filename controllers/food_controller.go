package controllers

import (
	"net/http"

	"github.com/FranciscoACLima/nutricao-web-app/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodReferenceService
}

func NewFoodController(foods *services.FoodReferenceService) *FoodController {
	return &FoodController{foods: foods}
}

// Search answers GET /foods?q=arroz with a possibly-empty match list.
func (ct *FoodController) Search(c *gin.Context) {
	matches, err := ct.foods.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": matches})
}

// Exact answers GET /foods/:name with the nutrient values used for autofill.
func (ct *FoodController) Exact(c *gin.Context) {
	entry, err := ct.foods.FindExact(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
