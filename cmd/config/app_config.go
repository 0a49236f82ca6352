package config

import (
	"fitlens-backend/internal/api/handlers"
	"fitlens-backend/internal/api/routes"
	"fitlens-backend/internal/metrics"
	"fitlens-backend/internal/middleware"
	"fitlens-backend/internal/utils"
	"fitlens-backend/pkg/analysis"
	"fitlens-backend/pkg/billing"
	"fitlens-backend/pkg/body"
	"fitlens-backend/pkg/coach"
	"fitlens-backend/pkg/food"
	"fitlens-backend/pkg/gateway"
	"fitlens-backend/pkg/pipeline"
	"fitlens-backend/pkg/recipe"
	"fitlens-backend/pkg/recommendation"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// base64 photos from phone cameras run to several megabytes
const bodyLimit = 12 * 1024 * 1024

func NewApp(gw gateway.Gateway, processor billing.Processor, m *metrics.Metrics, logger *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit:             bodyLimit,
		DisableStartupMessage: utils.GetConfig("APP_ENV") == "production",
	})
	middlewares := middleware.NewMiddleware(logger)
	validator := utils.Validate

	// setting up access logging
	accessLog, err := openAccessLog(utils.GetConfig("ACCESS_LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(middlewares.AccessLogMiddleware(accessLog))

	// Pipeline
	analysisPipeline := pipeline.NewPipeline(gw, m, logger)

	// Service
	foodService := food.NewFoodService(analysisPipeline, logger)
	bodyService := body.NewBodyService(analysisPipeline, logger)
	recommendationService := recommendation.NewRecommendationService(analysisPipeline, logger)
	recipeService := recipe.NewRecipeService(analysisPipeline, logger)
	coachService := coach.NewCoachService(analysisPipeline, logger)
	analysisService := analysis.NewAnalysisService(foodService, bodyService, recommendationService, logger)
	billingService := billing.NewBillingService(processor, m, logger)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	bodyHandler := handlers.NewBodyHandler(bodyService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, analysisService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	coachHandler := handlers.NewCoachHandler(coachService, validator)
	billingHandler := handlers.NewBillingHandler(billingService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		FoodHandler:           foodHandler,
		BodyHandler:           bodyHandler,
		RecommendationHandler: recommendationHandler,
		RecipeHandler:         recipeHandler,
		CoachHandler:          coachHandler,
		BillingHandler:        billingHandler,
		Middleware:            middlewares,
		Metrics:               m,
	}
	routesConfig.Setup()
	return app, nil
}

// openAccessLog appends to path, creating its directory, or falls back to
// stdout when no file is configured.
func openAccessLog(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}
