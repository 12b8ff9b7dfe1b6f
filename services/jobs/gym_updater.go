package jobs

import (
	"log"
	"time"

	"bjj_atlas_go/config"
	"bjj_atlas_go/models"
	"bjj_atlas_go/services"
	"bjj_atlas_go/services/serpapi"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler starts the cron scheduler for the weekly gym refresh.
// Runs every Monday at 03:00 server time.
func StartScheduler(db *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	if cfg.SerpAPIKey == "" {
		log.Println("[JOBS] SERP_API_KEY not set, gym refresh scheduler disabled")
		return nil, nil
	}

	provider, err := serpapi.GetProvider("google_maps", cfg.SerpAPIKey)
	if err != nil {
		return nil, err
	}

	c := cron.New()
	_, err = c.AddFunc("0 3 * * 1", func() {
		log.Println("[JOBS] Starting scheduled gym refresh")
		run, err := UpdateAllGyms(db, provider, time.Duration(cfg.ScrapeDelayMs)*time.Millisecond)
		if err != nil {
			log.Printf("[JOBS] Gym refresh failed: %v", err)
			return
		}
		notifyRunSummary(cfg, run)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Println("[JOBS] Gym refresh scheduler started (weekly, Mondays 03:00)")
	return c, nil
}

// UpdateAllGyms searches for gyms in every city and upserts the results.
// A failure for one city is logged and counted; the run continues with the
// remaining cities. The run record is persisted before and after processing.
func UpdateAllGyms(db *gorm.DB, provider serpapi.Provider, delay time.Duration) (*models.ScrapeRun, error) {
	run := &models.ScrapeRun{
		Status:    models.ScrapeRunStatusRunning,
		StartedAt: time.Now(),
	}
	if err := db.Create(run).Error; err != nil {
		return nil, err
	}

	var cities []models.City
	if err := db.Find(&cities).Error; err != nil {
		return nil, err
	}

	log.Printf("[JOBS] Refreshing gyms for %d cities", len(cities))

	for i, city := range cities {
		coords := ""
		if city.Coordinates != nil {
			coords = *city.Coordinates
		}

		results, err := provider.SearchGyms(city.Name, city.Country, coords)
		if err != nil {
			log.Printf("[JOBS] Search failed for %s, %s: %v", city.Name, city.Country, err)
			run.Failures++
		} else {
			for _, res := range results {
				gym := services.GymFromSearchResult(city.ID, res)
				created, err := services.UpsertScrapedGym(db, gym)
				if err != nil {
					log.Printf("[JOBS] Upsert failed for %q in %s: %v", gym.Name, city.Name, err)
					run.Failures++
					continue
				}
				if created {
					run.GymsCreated++
				} else {
					run.GymsUpdated++
				}
			}

			if _, err := services.RefreshGymCount(db, city.ID); err != nil {
				log.Printf("[JOBS] Gym count refresh failed for %s: %v", city.Name, err)
			}
		}

		run.CitiesProcessed++

		// Throttle between cities to stay within provider rate limits
		if delay > 0 && i < len(cities)-1 {
			time.Sleep(delay)
		}
	}

	now := time.Now()
	run.Status = models.ScrapeRunStatusCompleted
	run.FinishedAt = &now
	if err := db.Save(run).Error; err != nil {
		return nil, err
	}

	log.Printf("[JOBS] Gym refresh completed: %d cities, %d created, %d updated, %d failures",
		run.CitiesProcessed, run.GymsCreated, run.GymsUpdated, run.Failures)
	return run, nil
}

func notifyRunSummary(cfg *config.Config, run *models.ScrapeRun) {
	if cfg.AdminEmail == "" {
		return
	}
	email := services.BuildScrapeRunSummaryEmail(cfg.AdminEmail, run)
	if err := services.SendEmail(cfg, email); err != nil {
		log.Printf("[JOBS] Failed to send run summary email: %v", err)
	}
}
