package main

import (
	"context"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/config"
	"github.com/FranciscoACLima/nutricao-web-app/controllers"
	"github.com/FranciscoACLima/nutricao-web-app/logger"
	"github.com/FranciscoACLima/nutricao-web-app/routes"
	"github.com/FranciscoACLima/nutricao-web-app/services"
	"github.com/FranciscoACLima/nutricao-web-app/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // .env is optional
	logger.Init()
	defer logger.Sync()

	config.InitDB()
	db := config.DB

	mealStore := storage.NewMealStore(db)
	measurementStore := storage.NewMeasurementStore(db)
	goalStore := storage.NewGoalStore(db)
	foodStore := storage.NewFoodStore(db)

	mealSvc := services.NewMealService(mealStore)
	measurementSvc := services.NewMeasurementService(measurementStore)
	goalSvc := services.NewGoalService(goalStore)
	foodSvc := services.NewFoodReferenceService(foodStore)

	// One-shot reference load; a fetch failure falls back to the seed set.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	loaded, err := foodSvc.BulkLoad(ctx, services.NewTacoClient())
	cancel()
	if err != nil {
		logger.Fatal("reference table load failed", zap.Error(err))
	}
	if loaded > 0 {
		logger.Info("reference table populated", zap.Int("rows", loaded))
	}

	if err := goalSvc.EnsureSeeded(); err != nil {
		logger.Fatal("goal seed failed", zap.Error(err))
	}

	if config.GetEnv("SEED_DEMO_DATA", "false") == "true" {
		seeder := services.NewDemoSeeder(mealStore, measurementStore, goalSvc)
		if err := seeder.Seed(); err != nil {
			logger.Fatal("demo seed failed", zap.Error(err))
		}
	}

	r := routes.SetupRouter(routes.Controllers{
		Meals:        controllers.NewMealController(mealSvc, goalSvc),
		Measurements: controllers.NewMeasurementController(measurementSvc),
		Goals:        controllers.NewGoalController(goalSvc),
		Foods:        controllers.NewFoodController(foodSvc),
		Dashboard:    controllers.NewDashboardController(mealSvc, measurementSvc, goalSvc),
		Export:       controllers.NewExportController(mealStore, measurementStore),
	})

	addr := config.GetEnv("HTTP_ADDRESS", ":8080")
	logger.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
