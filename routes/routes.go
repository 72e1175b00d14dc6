package routes

import (
	"github.com/FranciscoACLima/nutricao-web-app/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Meals        *controllers.MealController
	Measurements *controllers.MeasurementController
	Goals        *controllers.GoalController
	Foods        *controllers.FoodController
	Dashboard    *controllers.DashboardController
	Export       *controllers.ExportController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/meals", ctl.Meals.Create)
		api.GET("/meals", ctl.Meals.ListByDate)
		api.GET("/meals/summary", ctl.Meals.DaySummary)
		api.GET("/meals/series", ctl.Meals.Series)

		api.POST("/measurements", ctl.Measurements.Create)
		api.GET("/measurements", ctl.Measurements.List)
		api.GET("/measurements/progress", ctl.Measurements.Progress)

		api.GET("/goals", ctl.Goals.Get)
		api.PUT("/goals", ctl.Goals.Update)

		api.GET("/foods", ctl.Foods.Search)
		api.GET("/foods/:name", ctl.Foods.Exact)

		api.GET("/dashboard", ctl.Dashboard.Overview)

		api.GET("/export/meals.csv", ctl.Export.Meals)
		api.GET("/export/measurements.csv", ctl.Export.Measurements)
	}

	return r
}
