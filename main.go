package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/agents"
	"app/analytics"
	"app/backends"
	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Set up the application configuration
	config.AppConfig = config.Config{
		DataBackend:  getenvDefault("DATA_BACKEND", "csv"),
		DataDir:      getenvDefault("DATA_DIR", "data/processed"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Addr:         getenvDefault("ADDR", ":3000"),
	}

	// Load the data context once at startup; it is read-only afterwards.
	var ctx *analytics.DataContext
	switch config.AppConfig.DataBackend {
	case "postgres", "supabase":
		if config.AppConfig.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()

		ctx, err = backends.BuildContextFromPostgres(context.Background(), database.GetDB())
		if err != nil {
			log.Fatalf("Failed to load data context from Postgres: %v", err)
		}
	default:
		ctx, err = backends.BuildContextFromCSV(config.AppConfig.DataDir)
		if err != nil {
			log.Fatalf("Failed to load data context from %s: %v", config.AppConfig.DataDir, err)
		}
	}
	log.Printf("Loaded data context: %d brands, %d transactions, %d shelf events, %d stt events",
		len(ctx.Brands), len(ctx.Transactions), len(ctx.ShelfVision), len(ctx.SttEvents))

	// Wire the pipeline explicitly; no lazy singletons.
	handlers.Init(&handlers.Deps{
		Ctx:     ctx,
		Planner: agents.Planner{},
		Analyst: agents.NewDataAnalyst(ctx),
		Coach:   agents.NewCoach("heuristic"),
	})

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(config.AppConfig.Addr))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
