package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/config"
	"app/handlers"
	"app/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", handlers.HandleHealth)

	// --- Store Routes ---
	store := api.Group("/store")
	store.Get("/:storeId/summary", handlers.HandleGetStoreSummary)
	store.Get("/:storeId/brands", handlers.HandleGetStoreBrands)

	// --- Coach Routes ---
	coach := api.Group("/coach")
	coach.Post("/recommendations", handlers.HandleCoachRecommendations)

	// The Gemini-backed endpoint is token-guarded when a secret is configured.
	if config.AppConfig.JWTSecret != "" {
		coach.Post("/ask", middleware.JWTMiddleware, handlers.HandleAskCoach)
	} else {
		coach.Post("/ask", handlers.HandleAskCoach)
	}
}
