package main

import (
	"log"

	"bjj_atlas_go/config"
	"bjj_atlas_go/db"
	"bjj_atlas_go/handlers"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"
	"bjj_atlas_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.City{}, &models.Gym{}, &models.ScrapeRun{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed featured cities on an empty database
	if err := services.SeedCities(db.DB); err != nil {
		log.Fatalf("Failed to seed cities: %v", err)
	}

	// Set up image storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files (local image uploads)
	e.Static("/static", "static")

	// API routes
	api := e.Group("/api")
	{
		api.GET("/cities", handlers.GetCitiesHandler)
		api.GET("/cities/compare", handlers.CompareCitiesHandler)
		api.GET("/cities/compare/export", handlers.ExportComparisonHandler)
		api.GET("/cities/:id", handlers.GetCityHandler)
		api.PATCH("/cities/:id/gym-count", handlers.UpdateGymCountHandler)
		api.POST("/cities/:id/image", handlers.UploadCityImageHandler)
		api.GET("/cities/:cityId/gyms", handlers.GetGymsByCityHandler)
		api.POST("/gyms", handlers.CreateGymHandler)
		api.GET("/validation/cities", handlers.GetCityValidationHandler)
		api.GET("/validation/gyms", handlers.GetGymValidationHandler)
	}

	// Weekly gym refresh
	if _, err := jobs.StartScheduler(db.DB, cfg); err != nil {
		log.Printf("Failed to start gym refresh scheduler: %v", err)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
