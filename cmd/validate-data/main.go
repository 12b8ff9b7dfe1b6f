package main

import (
	"fmt"
	"log"
	"os"

	"bjj_atlas_go/config"
	"bjj_atlas_go/db"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"
)

// Prints a data quality report for cities and gyms. Exits non-zero
// when any issues are found so it can gate deploys in CI.
func main() {
	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.City{}, &models.Gym{}, &models.ScrapeRun{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cityIssues, err := services.ValidateCities(db.DB)
	if err != nil {
		log.Fatalf("City validation failed: %v", err)
	}

	gymIssues, err := services.ValidateGyms(db.DB)
	if err != nil {
		log.Fatalf("Gym validation failed: %v", err)
	}

	total := 0
	for _, result := range cityIssues {
		fmt.Printf("City %s (%s):\n", result.City, result.CityID)
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
			total++
		}
	}
	for _, result := range gymIssues {
		fmt.Printf("Gym %s (%s):\n", result.City, result.CityID)
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
			total++
		}
	}

	if total == 0 {
		fmt.Println("No data quality issues found")
		return
	}
	fmt.Printf("%d issues found\n", total)
	os.Exit(1)
}
