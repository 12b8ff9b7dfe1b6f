package main

import (
	"log"
	"time"

	"bjj_atlas_go/config"
	"bjj_atlas_go/db"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services/jobs"
	"bjj_atlas_go/services/serpapi"
)

// One-shot gym ingestion run over every city in the database.
func main() {
	cfg := config.Load()

	if cfg.SerpAPIKey == "" {
		log.Fatal("SERP_API_KEY is required")
	}

	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.City{}, &models.Gym{}, &models.ScrapeRun{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	provider, err := serpapi.GetProvider("google_maps", cfg.SerpAPIKey)
	if err != nil {
		log.Fatalf("Failed to create search provider: %v", err)
	}

	run, err := jobs.UpdateAllGyms(db.DB, provider, time.Duration(cfg.ScrapeDelayMs)*time.Millisecond)
	if err != nil {
		log.Fatalf("Gym refresh failed: %v", err)
	}

	log.Printf("Done: %d cities processed, %d gyms created, %d updated, %d failures",
		run.CitiesProcessed, run.GymsCreated, run.GymsUpdated, run.Failures)
}
