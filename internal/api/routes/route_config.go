package routes

import (
	"fitlens-backend/internal/api/handlers"
	"fitlens-backend/internal/metrics"
	"fitlens-backend/internal/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	analysisRateLimit  = 10
	analysisRateWindow = time.Minute
)

type Config struct {
	App                   *fiber.App
	FoodHandler           handlers.FoodHandler
	BodyHandler           handlers.BodyHandler
	RecommendationHandler handlers.RecommendationHandler
	RecipeHandler         handlers.RecipeHandler
	CoachHandler          handlers.CoachHandler
	BillingHandler        handlers.BillingHandler
	Middleware            middleware.Middleware
	Metrics               *metrics.Metrics
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Analysis()
	c.Billing()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	if c.Metrics != nil {
		c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Metrics.Registry, promhttp.HandlerOpts{})))
	}
}

func (c *Config) Analysis() {
	// each route gets its own limiter so a chat session does not use up the
	// budget of the photo analyses; a group handler would also cover /api/billing
	limit := func() fiber.Handler {
		return c.Middleware.RateLimitMiddleware(analysisRateLimit, analysisRateWindow)
	}
	api := c.App.Group("/api")
	{
		api.Post("/analyze-food", limit(), c.FoodHandler.AnalyzeFood)
		api.Post("/analyze-body", limit(), c.BodyHandler.AnalyzeBody)
		api.Post("/recommendations", limit(), c.RecommendationHandler.GenerateRecommendations)
		api.Post("/analyze-complete", limit(), c.RecommendationHandler.AnalyzeComplete)
		api.Post("/generate-recipe", limit(), c.RecipeHandler.GenerateRecipe)
		api.Post("/coach-chat", limit(), c.CoachHandler.Chat)
	}
}

func (c *Config) Billing() {
	billing := c.App.Group("/api/billing")
	{
		billing.Get("/plans", c.BillingHandler.GetPlans)
		billing.Post("/checkout", c.BillingHandler.CreateCheckout)
		billing.Post("/webhook", c.BillingHandler.Webhook)
		billing.Post("/cancel", c.BillingHandler.CancelSubscription)
	}
}
