package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScrapeRunStatusRunning   = "RUNNING"
	ScrapeRunStatusCompleted = "COMPLETED"
)

// ScrapeRun records one full pass of the gym ingestion worker.
type ScrapeRun struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Status     string     `gorm:"not null;default:RUNNING" json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`

	CitiesProcessed int `json:"cities_processed"`
	GymsCreated     int `json:"gyms_created"`
	GymsUpdated     int `json:"gyms_updated"`
	Failures        int `json:"failures"`
}

// BeforeCreate hook to generate UUID
func (r *ScrapeRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (ScrapeRun) TableName() string {
	return "scrape_runs"
}
